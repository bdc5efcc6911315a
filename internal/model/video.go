package model

// Video is a validation clip. The file path doubles as the natural key: the
// seeding routine upserts by id, so re-running it against an updated bundle
// updates rows in place instead of duplicating them.
type Video struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	CorrectSign string `json:"correctSign"`
}

// SeedVideo is one entry of the bundled videos.json file. ID may be omitted,
// in which case the path is used as the key.
type SeedVideo struct {
	ID          string `json:"id,omitempty"`
	Path        string `json:"path"`
	CorrectSign string `json:"correctSign"`
}

// Key returns the natural key for the entry.
func (v SeedVideo) Key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Path
}
