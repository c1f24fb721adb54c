package models

// Backup is the export/import document. The field names are the on-disk
// file format; sleepData keeps its historical name for compatibility with
// files exported by earlier versions.
type Backup struct {
	Reflections []Reflection           `json:"reflections"`
	SleepData   map[string]DailyRecord `json:"sleepData"`
	ExportedAt  string                 `json:"exportedAt"`
	AppVersion  string                 `json:"appVersion"`
}
