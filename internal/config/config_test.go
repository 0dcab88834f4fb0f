package config

import "testing"

func TestValidateAlgorithm_Accepted(t *testing.T) {
	for _, alg := range []string{"HS256", "HS512"} {
		if err := ValidateAlgorithm(alg); err != nil {
			t.Fatalf("ValidateAlgorithm(%q) error: %v", alg, err)
		}
	}
}

func TestValidateAlgorithm_Rejected(t *testing.T) {
	for _, alg := range []string{"", "HS384", "RS256", "none", "hs256"} {
		if err := ValidateAlgorithm(alg); err == nil {
			t.Fatalf("ValidateAlgorithm(%q) expected error", alg)
		}
	}
}

func TestGet_EmptyBeforeInit(t *testing.T) {
	StoreForTest(Config{})
	c := Get()
	if c.JWT.Secret != "" {
		t.Fatalf("expected zero config, got %+v", c)
	}
}

func TestStoreForTest_Snapshot(t *testing.T) {
	StoreForTest(Config{JWT: JWTConfig{Secret: "s", Algorithm: "HS256"}})
	if got := Get().JWT.Secret; got != "s" {
		t.Fatalf("unexpected secret %q", got)
	}
}
