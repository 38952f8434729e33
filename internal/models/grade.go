package models

// GradeWeight maps a letter grade to its numeric weight. The table is
// static reference data maintained outside this service.
type GradeWeight struct {
	Nilai string  `db:"nilai" json:"nilai"`
	Bobot float64 `db:"bobot" json:"bobot"`
}

// SemesterGrade is one graded enrollment row resolved against course
// credits and grade weight, as consumed by the IPS calculation.
type SemesterGrade struct {
	NamaMK string  `db:"nama_mk" json:"nama_mk"`
	SKS    int     `db:"sks" json:"sks"`
	Nilai  string  `db:"nilai" json:"nilai"`
	Bobot  float64 `db:"bobot" json:"bobot"`
}

// IPSCourseDetail is the per-course breakdown line in an IPS report.
type IPSCourseDetail struct {
	MataKuliah string  `json:"mata_kuliah"`
	SKS        int     `json:"sks"`
	Nilai      string  `json:"nilai"`
	Bobot      float64 `json:"bobot"`
	BobotXSKS  float64 `json:"bobot_x_sks"`
}

// IPSReport is the credit-weighted semester GPA breakdown.
type IPSReport struct {
	NIM        string            `json:"nim"`
	Nama       string            `json:"nama"`
	Semester   int               `json:"semester"`
	IPS        float64           `json:"ips"`
	TotalSKS   int               `json:"total_sks"`
	TotalBobot float64           `json:"total_bobot"`
	Details    []IPSCourseDetail `json:"details"`
}
