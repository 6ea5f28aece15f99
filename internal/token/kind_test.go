package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KwUnless, "unless"},
		{PipeGt, "|>"},
		{QDot, "?."},
		{DotDot, ".."},
		{TemplateOpen, "TemplateOpen"},
	}
	for _, tc := range cases {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.k, got, tc.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("until"); !ok || k != KwUntil {
		t.Fatalf("until => %v %v", k, ok)
	}
	if _, ok := LookupKeyword("untilx"); ok {
		t.Fatal("untilx should not be a keyword")
	}
}

func TestWordOperatorText(t *testing.T) {
	if s, ok := WordOperatorText(KwIsnt); !ok || s != "!==" {
		t.Fatalf("isnt => %q %v", s, ok)
	}
	if _, ok := WordOperatorText(Plus); ok {
		t.Fatal("Plus is not a word operator")
	}
}

func TestRelationalChainMembers(t *testing.T) {
	for _, k := range []Kind{Lt, LtEq, Gt, GtEq, KwInstanceof, KwIn, KwIs} {
		if !(Token{Kind: k}).IsRelational() {
			t.Errorf("%v should be relational", k)
		}
	}
	if (Token{Kind: AndAnd}).IsRelational() {
		t.Error("&& is not relational")
	}
}
