package validate

import (
	"reflect"
	"testing"
)

func TestCheckLength(t *testing.T) {
	check := Check("12345", 5, nil)
	if check.Length != 5 || check.MaxAllowed != 5 || !check.OKLength {
		t.Errorf("Check on exact-length text = %+v, want length 5/5 ok", check)
	}

	check = Check("123456", 5, nil)
	if check.OKLength {
		t.Error("Expected ok_length false for text over the limit")
	}
}

func TestCheckLengthCountsRunes(t *testing.T) {
	// 7 cyrillic characters, 14 bytes
	check := Check("электро", 7, nil)
	if check.Length != 7 {
		t.Errorf("Length = %d, want 7 (runes, not bytes)", check.Length)
	}
	if !check.OKLength {
		t.Error("Expected ok_length true for 7 runes against max 7")
	}
}

func TestMissingKeywordsCaseInsensitive(t *testing.T) {
	// "bicycle" has no case-insensitive match in the text
	check := Check("Buy the best bikes online", 150, []string{"bicycle"})
	if !reflect.DeepEqual(check.MissingKeywords, []string{"bicycle"}) {
		t.Errorf("MissingKeywords = %v, want [bicycle]", check.MissingKeywords)
	}

	check = Check("Buy the best Bicycles online", 150, []string{"bicycle"})
	if len(check.MissingKeywords) != 0 {
		t.Errorf("Expected no missing keywords for case-insensitive match, got %v", check.MissingKeywords)
	}
}

func TestMissingKeywordsAllPresent(t *testing.T) {
	keywords := []string{"Electric Bike", "cycling", "город"}
	text := "Best ELECTRIC BIKE guide for Cycling around велогород"

	if missing := MissingKeywords(text, keywords); len(missing) != 0 {
		t.Errorf("Expected empty missing list when every keyword is present, got %v", missing)
	}
}

func TestMissingKeywordsPreservesInputOrder(t *testing.T) {
	missing := MissingKeywords("nothing relevant here", []string{"zebra", "apple", "mango"})
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("MissingKeywords = %v, want %v", missing, want)
	}
}

func TestMissingKeywordsEmptyRequired(t *testing.T) {
	if missing := MissingKeywords("any text", nil); len(missing) != 0 {
		t.Errorf("Expected empty result for nil keywords, got %v", missing)
	}
}
