package dto

type AchievementResponse struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Value     int64  `json:"value"`
	ImageName string `json:"imageName"`
	Unlocked  bool   `json:"unlocked"`
}
