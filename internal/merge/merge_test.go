package merge

import (
	"reflect"
	"testing"
)

func TestStringsDeduplicatesPreservingOrder(t *testing.T) {
	got := Strings([]string{"action", "drama"}, []string{"drama", "fantasy", "action"})
	want := []string{"action", "drama", "fantasy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Strings = %v, want %v", got, want)
	}
}

func TestStringsIsStableAcrossPasses(t *testing.T) {
	base := []string{"kakao"}
	for i := 0; i < 3; i++ {
		base = Strings(base, []string{"kakao", "naver"})
	}
	want := []string{"kakao", "naver"}
	if !reflect.DeepEqual(base, want) {
		t.Fatalf("after repeated merges got %v, want %v", base, want)
	}
}

func TestStringsDoesNotAliasBase(t *testing.T) {
	base := []string{"mon", "tue"}
	got := Strings(base, []string{"wed"})
	got[0] = "changed"
	if base[0] != "mon" {
		t.Fatalf("base slice was mutated: %v", base)
	}
}

func TestDedupNilStaysNil(t *testing.T) {
	if got := Dedup(nil); got != nil {
		t.Fatalf("Dedup(nil) = %v", got)
	}
}

func TestStringOverwritesOnlyWhenPresent(t *testing.T) {
	v := "new summary"
	if got := String("old", &v); got != "new summary" {
		t.Fatalf("String with present value = %q", got)
	}
	if got := String("old", nil); got != "old" {
		t.Fatalf("String with absent value = %q", got)
	}
}

func TestPutURLOverwritesSameService(t *testing.T) {
	urls := PutURL(nil, "kakao", "https://x/alpha")
	urls = PutURL(urls, "naver", "https://comic/x/alpha")
	urls = PutURL(urls, "kakao", "https://x/alpha?tab=profile")

	want := map[string]string{
		"kakao": "https://x/alpha?tab=profile",
		"naver": "https://comic/x/alpha",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
}
