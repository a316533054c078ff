package listing

import (
	"context"
	"testing"

	"github.com/TodayWantLook/Crawler/internal/domain"
	"github.com/TodayWantLook/Crawler/pkg/httpclient"
)

// stubResponse implements httpclient.Response.
type stubResponse struct {
	body       []byte
	statusCode int
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.statusCode }

// stubClient records the request and returns a single canned response.
type stubClient struct {
	url   string
	query map[string]string
	resp  httpclient.Response
}

func (s *stubClient) Get(_ context.Context, url string, query map[string]string) (httpclient.Response, error) {
	s.url = url
	s.query = query
	return s.resp, nil
}

func TestFetchDecodesListingPage(t *testing.T) {
	body := []byte(`{"webtoons":[
		{"webtoonId":"w1","title":"Alpha","author":"Kim","url":"https://x/alpha",
		 "img":"https://x/alpha.png","service":"kakao","updateDays":["mon"],
		 "additional":{"new":true,"adult":false,"rest":false,"up":false,"singularityList":["waitfree"]}}
	]}`)
	stub := &stubClient{resp: stubResponse{body: body, statusCode: 200}}
	client := NewClient(stub, "https://listing.example")

	res, err := client.Fetch(context.Background(), 2, domain.ServiceKakao, domain.DayMon)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if res.Degraded {
		t.Fatalf("unexpected degraded result")
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}

	rec := res.Records[0]
	if rec.WebtoonID != "w1" || rec.Title != "Alpha" || rec.Service != "kakao" {
		t.Fatalf("record fields wrong: %#v", rec)
	}
	if !rec.Additional.New || rec.Additional.Adult {
		t.Fatalf("additional flags wrong: %#v", rec.Additional)
	}
	if len(rec.Additional.SingularityList) != 1 || rec.Additional.SingularityList[0] != "waitfree" {
		t.Fatalf("singularity list wrong: %v", rec.Additional.SingularityList)
	}

	if stub.query["page"] != "2" || stub.query["service"] != "kakao" || stub.query["updateDay"] != "mon" {
		t.Fatalf("query params wrong: %v", stub.query)
	}
}

func TestFetchMissingFieldsDefaultToZeroValues(t *testing.T) {
	body := []byte(`{"webtoons":[{"title":"Bare"}]}`)
	client := NewClient(&stubClient{resp: stubResponse{body: body, statusCode: 200}}, "https://listing.example")

	res, err := client.Fetch(context.Background(), 1, domain.ServiceNaver, domain.DayFinished)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	rec := res.Records[0]
	if rec.WebtoonID != "" || rec.Author != "" || rec.URL != "" {
		t.Fatalf("expected zero values for missing fields: %#v", rec)
	}
	if rec.UpdateDays != nil {
		t.Fatalf("expected nil updateDays, got %v", rec.UpdateDays)
	}
}

func TestFetchNonSuccessStatusIsDegradedNotError(t *testing.T) {
	client := NewClient(&stubClient{resp: stubResponse{statusCode: 503}}, "https://listing.example")

	res, err := client.Fetch(context.Background(), 1, domain.ServiceKakao, domain.DayFinished)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !res.Degraded || res.StatusCode != 503 {
		t.Fatalf("expected degraded result, got %#v", res)
	}
	if len(res.Records) != 0 {
		t.Fatalf("degraded result must carry no records")
	}
}

func TestFetchRejectsNonPositivePage(t *testing.T) {
	client := NewClient(&stubClient{resp: stubResponse{statusCode: 200}}, "https://listing.example")
	if _, err := client.Fetch(context.Background(), 0, domain.ServiceKakao, domain.DayFinished); err == nil {
		t.Fatalf("expected error for page 0")
	}
}
