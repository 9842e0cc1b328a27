package models

// Branch is a physical restaurant location. Branches are defined statically
// at process start and never change.
type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}
