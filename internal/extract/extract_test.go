package extract

import (
	"reflect"
	"testing"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

const naverDetailHTML = `
<html><body>
  <div id="content">
    <div><div><div>
      <p>A hero rises.</p>
      <div><div><a>#action</a><a>#drama</a></div></div>
    </div></div></div>
  </div>
</body></html>`

const kakaoDetailHTML = `
<html><body>
  <div id="root"><main><div><div>
    <picture><img src="https://cdn.example/backdrop.png"></picture>
    <div><div><div><div>
      <div>ignored</div>
      <div><div><p>A villain falls.</p></div></div>
      <div><div><a>#fantasy</a><a>#romance</a></div></div>
    </div></div></div></div>
  </div></div></main></div>
</body></html>`

func TestExtractNaver(t *testing.T) {
	det, err := Extract(naverDetailHTML, domain.ServiceNaver)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if det == nil {
		t.Fatalf("expected a detail result for naver")
	}
	if !reflect.DeepEqual(det.Genre, []string{"action", "drama"}) {
		t.Fatalf("genre = %v", det.Genre)
	}
	if det.Summary == nil || *det.Summary != "A hero rises." {
		t.Fatalf("summary = %v", det.Summary)
	}
	if det.BackdropImg != nil {
		t.Fatalf("naver pages have no backdrop, got %v", *det.BackdropImg)
	}
}

func TestExtractKakao(t *testing.T) {
	det, err := Extract(kakaoDetailHTML, domain.ServiceKakao)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if det == nil {
		t.Fatalf("expected a detail result for kakao")
	}
	if !reflect.DeepEqual(det.Genre, []string{"fantasy", "romance"}) {
		t.Fatalf("genre = %v", det.Genre)
	}
	if det.Summary == nil || *det.Summary != "A villain falls." {
		t.Fatalf("summary = %v", det.Summary)
	}
	if det.BackdropImg == nil || *det.BackdropImg != "https://cdn.example/backdrop.png" {
		t.Fatalf("backdrop = %v", det.BackdropImg)
	}
}

func TestExtractUnknownServiceYieldsNoEnrichment(t *testing.T) {
	det, err := Extract("<html></html>", domain.Service("lezhin"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if det != nil {
		t.Fatalf("expected nil detail for unknown service, got %#v", det)
	}
}

func TestExtractAbsentFieldsStayAbsent(t *testing.T) {
	det, err := Extract("<html><body><div id='content'></div></body></html>", domain.ServiceNaver)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if det.Summary != nil {
		t.Fatalf("summary should be absent, got %q", *det.Summary)
	}
	if det.Genre != nil {
		t.Fatalf("genre should be absent, got %v", det.Genre)
	}
}

func TestSplitTagsDropsLeadingBoilerplate(t *testing.T) {
	got := splitTags("genres#action#drama")
	if !reflect.DeepEqual(got, []string{"action", "drama"}) {
		t.Fatalf("splitTags = %v", got)
	}
	if got := splitTags(""); got != nil {
		t.Fatalf("splitTags(\"\") = %v", got)
	}
}
