package models

// DBStatistics carries row counts per entity collection.
type DBStatistics struct {
	TotalMahasiswa  int `json:"total_mahasiswa"`
	TotalMataKuliah int `json:"total_mata_kuliah"`
	TotalKRS        int `json:"total_krs"`
}

// DBStatus is the db-status diagnostic payload.
type DBStatus struct {
	Status     string       `json:"status"`
	Database   string       `json:"database"`
	Version    string       `json:"version"`
	Statistics DBStatistics `json:"statistics"`
}
