package schedule_post

// Request создаёт или целиком заменяет расписание недели.
type Request struct {
	Week          string    `json:"week"`
	TotalCapacity int64     `json:"total_capacity"`
	Tolerance     int64     `json:"tolerance"`
	Days          []RuleDay `json:"days"`
}

type RuleDay struct {
	Date     string `json:"date"`
	Capacity int64  `json:"capacity"`
	IsSaved  bool   `json:"is_saved"`
}

type Response struct {
	ID            int64     `json:"id"`
	Week          string    `json:"week"`
	TotalCapacity int64     `json:"total_capacity"`
	Tolerance     int64     `json:"tolerance"`
	Days          []RuleDay `json:"days"`
}
