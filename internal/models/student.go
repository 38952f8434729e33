package models

// Student represents one mahasiswa record keyed by NIM.
type Student struct {
	NIM      string `db:"nim" json:"nim"`
	Nama     string `db:"nama" json:"nama"`
	Jurusan  string `db:"jurusan" json:"jurusan"`
	Angkatan int    `db:"angkatan" json:"angkatan"`
}
