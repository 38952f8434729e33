package models

// Course represents one mata kuliah record keyed by course code.
type Course struct {
	KodeMK string `db:"kode_mk" json:"kode_mk"`
	NamaMK string `db:"nama_mk" json:"nama_mk"`
	SKS    int    `db:"sks" json:"sks"`
}
