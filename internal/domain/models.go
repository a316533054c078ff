package domain

import "fmt"

// Domain contains the core models shared across the crawler.

// TypeWebtoon tags webtoon documents inside the shared media collection.
const TypeWebtoon = "webtoon"

// Service identifies a publishing platform carrying webtoons.
type Service string

const (
	ServiceNaver Service = "naver"
	ServiceKakao Service = "kakao"
)

// ParseService validates a service name supplied from the outside (CLI, config).
func ParseService(s string) (Service, error) {
	switch Service(s) {
	case ServiceNaver, ServiceKakao:
		return Service(s), nil
	}
	return "", fmt.Errorf("unknown service %q", s)
}

// UpdateDay is the listing category: a weekday, finished titles, or the
// naver daily board.
type UpdateDay string

const (
	DayMon        UpdateDay = "mon"
	DayTue        UpdateDay = "tue"
	DayWed        UpdateDay = "wed"
	DayThu        UpdateDay = "thu"
	DayFri        UpdateDay = "fri"
	DaySat        UpdateDay = "sat"
	DaySun        UpdateDay = "sun"
	DayFinished   UpdateDay = "finished"
	DayNaverDaily UpdateDay = "naverDaily"
)

// ParseUpdateDay validates an update-day category name.
func ParseUpdateDay(s string) (UpdateDay, error) {
	switch UpdateDay(s) {
	case DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun, DayFinished, DayNaverDaily:
		return UpdateDay(s), nil
	}
	return "", fmt.Errorf("unknown update day %q", s)
}

// Additional carries the listing API's per-title flags.
type Additional struct {
	New             bool     `json:"new" bson:"new"`
	Adult           bool     `json:"adult" bson:"adult"`
	Rest            bool     `json:"rest" bson:"rest"`
	Up              bool     `json:"up" bson:"up"`
	SingularityList []string `json:"singularityList" bson:"singularityList"`
}

// Listing is one summary entry from the listing API. It is transient and
// never persisted as-is.
type Listing struct {
	WebtoonID  string     `json:"webtoonId"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	URL        string     `json:"url"`
	Img        string     `json:"img"`
	Service    string     `json:"service"`
	UpdateDays []string   `json:"updateDays"`
	Additional Additional `json:"additional"`
}

// Rate is one user rating entry. This ingestion path never writes rates;
// they are carried through merges untouched.
type Rate struct {
	User    string  `json:"user" bson:"user"`
	Rate    float64 `json:"rate" bson:"rate"`
	Comment *string `json:"comment" bson:"comment"`
}

// Media is the canonical persisted document for one title across all
// services that carry it. There is exactly one Media per (type, title).
// The storage layer's own identifier (mongo _id) has no field here, so it
// can never leak into merge output.
type Media struct {
	Type        string            `json:"type" bson:"type"`
	WebtoonID   string            `json:"webtoonId" bson:"webtoonId"`
	Title       string            `json:"title" bson:"title"`
	Summary     string            `json:"summary" bson:"summary"`
	Genre       []string          `json:"genre" bson:"genre"`
	Author      string            `json:"author" bson:"author"`
	URL         map[string]string `json:"url" bson:"url"`
	Img         string            `json:"img" bson:"img"`
	BackdropImg string            `json:"backdrop_img,omitempty" bson:"backdrop_img,omitempty"`
	Services    []string          `json:"service" bson:"service"`
	UpdateDays  []string          `json:"updateDays" bson:"updateDays"`
	Rate        float64           `json:"rate" bson:"rate"`
	Rates       []Rate            `json:"rates" bson:"rates"`
	Additional  Additional        `json:"additional" bson:"additional"`
}

// Detail is the result of extracting a rendered detail page. Summary and
// BackdropImg are nil when the page carried no such field; merge rules only
// apply to fields that are present.
type Detail struct {
	Genre       []string
	Summary     *string
	BackdropImg *string
}
