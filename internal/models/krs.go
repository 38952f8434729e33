package models

// KRS is a single enrollment: one student taking one course in one
// term. Nilai stays nil until a grade is recorded.
type KRS struct {
	IDKRS    int64   `db:"id_krs" json:"id_krs"`
	NIM      string  `db:"nim" json:"nim"`
	KodeMK   string  `db:"kode_mk" json:"kode_mk"`
	Nilai    *string `db:"nilai" json:"nilai"`
	Semester int     `db:"semester" json:"semester"`
}

// KRSDetail is the denormalized listing row produced by joining krs
// with mahasiswa and mata_kuliah.
type KRSDetail struct {
	IDKRS         int64   `db:"id_krs" json:"id_krs"`
	NIM           string  `db:"nim" json:"nim"`
	NamaMahasiswa string  `db:"nama_mahasiswa" json:"nama_mahasiswa"`
	KodeMK        string  `db:"kode_mk" json:"kode_mk"`
	NamaMK        string  `db:"nama_mk" json:"nama_mk"`
	SKS           int     `db:"sks" json:"sks"`
	Nilai         *string `db:"nilai" json:"nilai"`
	Semester      int     `db:"semester" json:"semester"`
}

// KRSFilter narrows enrollment listings. Semester is optional.
type KRSFilter struct {
	NIM      string
	Semester *int
}
