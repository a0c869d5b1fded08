package enforcer_test

import (
	"path/filepath"
	"testing"

	"github.com/hiveos/go-canonical/pkg/enforcer"
	"github.com/hiveos/go-canonical/pkg/testsupport"
)

func TestEnforceBrandGolden(t *testing.T) {
	canonical := testsupport.MustLoadCanonical(t, filepath.Join("testdata", "brand_canonical.json"))
	alt := testsupport.MustLoadCanonical(t, filepath.Join("testdata", "brand_alt_v1.json"))

	enf := enforcer.New(enforcer.Options{})
	result := enf.Enforce("brand", canonical, alt)

	goldenPath := filepath.Join("testdata", "brand_enforced.golden.json")
	testsupport.WriteGolden(t, goldenPath, result)
	want := testsupport.MustLoadResult(t, goldenPath)

	if diff := testsupport.CompareGolden(want, result); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
