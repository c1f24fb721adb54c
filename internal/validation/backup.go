package validation

import (
	"encoding/json"
	"fmt"

	"github.com/mindfuljournal/mindful/internal/models"
)

type ProblemType string

const (
	ProblemMalformedJSON      ProblemType = "malformed_json"
	ProblemMissingReflections ProblemType = "missing_reflections"
	ProblemMissingSleepData   ProblemType = "missing_sleep_data"
	ProblemBadReflections     ProblemType = "bad_reflections"
	ProblemBadSleepData       ProblemType = "bad_sleep_data"
)

type Problem struct {
	Type   ProblemType
	Detail string
}

// Result is the outcome of validating a backup document. On success,
// Backup holds the fully decoded document; on failure, Problems explains
// what was wrong and Backup must not be used.
type Result struct {
	Backup   models.Backup
	Problems []Problem
}

func (r Result) OK() bool {
	return len(r.Problems) == 0
}

// ValidateBackup checks an import document before any merge logic runs.
// The top-level object must carry both a reflections key and a sleepData
// key, and each must decode into its collection type. Validation never
// mutates anything; a failed result means the import is rejected whole.
func ValidateBackup(data []byte) Result {
	var shape struct {
		Reflections *json.RawMessage `json:"reflections"`
		SleepData   *json.RawMessage `json:"sleepData"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return fail(ProblemMalformedJSON, fmt.Sprintf("not a JSON object: %v", err))
	}
	if shape.Reflections == nil {
		return fail(ProblemMissingReflections, "missing required key \"reflections\"")
	}
	if shape.SleepData == nil {
		return fail(ProblemMissingSleepData, "missing required key \"sleepData\"")
	}

	var result Result
	if err := json.Unmarshal(*shape.Reflections, &result.Backup.Reflections); err != nil {
		return fail(ProblemBadReflections, fmt.Sprintf("reflections is not a list of entries: %v", err))
	}
	if err := json.Unmarshal(*shape.SleepData, &result.Backup.SleepData); err != nil {
		return fail(ProblemBadSleepData, fmt.Sprintf("sleepData is not a day map: %v", err))
	}

	// exportedAt and appVersion are informational; their absence is fine.
	var meta struct {
		ExportedAt string `json:"exportedAt"`
		AppVersion string `json:"appVersion"`
	}
	if err := json.Unmarshal(data, &meta); err == nil {
		result.Backup.ExportedAt = meta.ExportedAt
		result.Backup.AppVersion = meta.AppVersion
	}

	return result
}

func fail(t ProblemType, detail string) Result {
	return Result{Problems: []Problem{{Type: t, Detail: detail}}}
}
