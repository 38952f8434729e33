package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Record Service",
        "description": "CRUD over mahasiswa, mata kuliah, KRS and bobot nilai plus IPS calculation",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Mahasiswa", "description": "Student records"},
        {"name": "MataKuliah", "description": "Course catalog"},
        {"name": "KRS", "description": "Enrollment records"},
        {"name": "IPS", "description": "Semester GPA calculation"},
        {"name": "Bobot", "description": "Grade weight reference"},
        {"name": "Health", "description": "Liveness and diagnostics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/acad/mahasiswa": {
            "get": {
                "tags": ["Mahasiswa"],
                "summary": "List students ordered by NIM",
                "responses": {"200": {"description": "Envelope with student array"}}
            },
            "post": {
                "tags": ["Mahasiswa"],
                "summary": "Register a student",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Mahasiswa"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "NIM already registered"}
                }
            }
        },
        "/api/acad/mahasiswa/{nim}": {
            "get": {
                "tags": ["Mahasiswa"],
                "summary": "Fetch one student",
                "parameters": [{"name": "nim", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Envelope with student"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/acad/matakuliah": {
            "get": {
                "tags": ["MataKuliah"],
                "summary": "List courses ordered by code",
                "responses": {"200": {"description": "Envelope with course array"}}
            },
            "post": {
                "tags": ["MataKuliah"],
                "summary": "Create a course",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MataKuliah"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Code already registered"}
                }
            }
        },
        "/api/acad/krs/{nim}": {
            "get": {
                "tags": ["KRS"],
                "summary": "List enrollments for a student",
                "parameters": [
                    {"name": "nim", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "Envelope with joined enrollment rows"}}
            }
        },
        "/api/acad/krs/{nim}/export": {
            "get": {
                "tags": ["KRS"],
                "summary": "Download the enrollment listing as CSV or PDF",
                "parameters": [
                    {"name": "nim", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "No enrollment data"}
                }
            }
        },
        "/api/acad/krs": {
            "post": {
                "tags": ["KRS"],
                "summary": "Record one enrollment",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/KRS"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/acad/calculate-ips": {
            "post": {
                "tags": ["IPS"],
                "summary": "Calculate the credit-weighted semester GPA",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/IPSRequest"}}],
                "responses": {
                    "200": {"description": "Envelope with IPS breakdown"},
                    "404": {"description": "No KRS data for this semester"}
                }
            }
        },
        "/api/acad/bobot": {
            "get": {
                "tags": ["Bobot"],
                "summary": "List grade-to-weight mappings",
                "responses": {"200": {"description": "Envelope with grade weights"}}
            }
        },
        "/api/acad/db-status": {
            "get": {
                "tags": ["Health"],
                "summary": "Row counts per collection and engine version",
                "responses": {
                    "200": {"description": "Diagnostic payload"},
                    "503": {"description": "Database unreachable"}
                }
            }
        }
    },
    "definitions": {
        "Mahasiswa": {
            "type": "object",
            "required": ["nim", "nama", "angkatan"],
            "properties": {
                "nim": {"type": "string"},
                "nama": {"type": "string"},
                "jurusan": {"type": "string"},
                "angkatan": {"type": "integer"}
            }
        },
        "MataKuliah": {
            "type": "object",
            "required": ["kode_mk", "nama_mk", "sks"],
            "properties": {
                "kode_mk": {"type": "string"},
                "nama_mk": {"type": "string"},
                "sks": {"type": "integer"}
            }
        },
        "KRS": {
            "type": "object",
            "required": ["nim", "kode_mk", "semester"],
            "properties": {
                "nim": {"type": "string"},
                "kode_mk": {"type": "string"},
                "nilai": {"type": "string"},
                "semester": {"type": "integer"}
            }
        },
        "IPSRequest": {
            "type": "object",
            "required": ["nim", "semester"],
            "properties": {
                "nim": {"type": "string"},
                "semester": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
