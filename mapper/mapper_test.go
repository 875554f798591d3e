package mapper

import (
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical defaults from defaults.go
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c, "")
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.Required, 400, codes.InvalidArgument)
	check(code.Unique, 409, codes.AlreadyExists)
	check(code.Foreign, 422, codes.FailedPrecondition)
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Unique, 409),        // default
		WithHTTPPrefix(code.Unique, "tags", 410), // prefix
		WithHTTPOverride(code.Unique, 418),       // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Unique, "tags.0.name")
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.Unique, int(codes.AlreadyExists)),
		WithGRPCPrefix(code.Unique, "tags", int(codes.Internal)),
		WithGRPCOverride(code.Unique, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Unique, "tags.0.name")
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unique, "author", 409),
		WithHTTPPrefix(code.Unique, "author.profile", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// LPM should pick the longer "author.profile"
	st := m.Status(code.Unique, "author.profile.url")
	if st.HTTP != 599 {
		t.Fatalf("LPM failed: got %d, want 599", st.HTTP)
	}
	// make sure we don't cross segment boundaries ("tags.long" must not match "tags.longName")
	m2, _ := New(WithHTTPPrefix(code.Unique, "tags.longName", 499))
	st2 := m2.Status(code.Unique, "tags.long")
	if st2.HTTP == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unique, "tags.*.name", 502),
		WithHTTPPrefix(code.Unique, "tags.0.name", 401), // exact should win at same depth
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := m.Status(code.Unique, "tags.0.name")
	if a.HTTP != 401 {
		t.Fatalf("exact must beat wildcard; got %d", a.HTTP)
	}
	b := m.Status(code.Unique, "tags.7.name.lang")
	if b.HTTP != 502 {
		t.Fatalf("wildcard match failed; got %d, want 502", b.HTTP)
	}
	// wildcard matches exactly one segment, not zero
	c := m.Status(code.Unique, "tags.name")
	if c.HTTP == 502 {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unique, "  .tags.0.name.  ", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Unique, "tags.0.name")
	if st.HTTP != 599 {
		t.Fatalf("normalized prefix should match; got %d", st.HTTP)
	}

	// Casing is preserved: camelized paths are case-significant.
	m2, err := New(WithHTTPPrefix(code.Unique, "tags.longName", 499))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(code.Unique, "tags.longname"); st.HTTP == 499 {
		t.Fatalf("prefix matching must be case-sensitive")
	}
	if st := m2.Status(code.Unique, "tags.longName"); st.HTTP != 499 {
		t.Fatalf("exact casing must match; got %d", st.HTTP)
	}

	// Invalid prefixes are rejected at build time.
	if _, err := New(WithHTTPPrefix(code.Unique, "tag name", 400)); err == nil {
		t.Fatalf("expected error for prefix with a space")
	}
	if _, err := New(WithHTTPPrefix(code.Unique, "*.*", 400)); err == nil {
		t.Fatalf("expected error for all-wildcard prefix")
	}
}

func TestEmptyField_UsesDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.LessThan, 408),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.LessThan, "")
	if st.HTTP != 408 {
		t.Fatalf("empty field should use default; got %d, want 408", st.HTTP)
	}

	// Overrides apply regardless of the field.
	m2, err := New(
		WithHTTPOverride(code.NoAssoc, 423),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st2 := m2.Status(code.NoAssoc, "")
	if st2.HTTP != 423 {
		t.Fatalf("override must win; got %d, want 423", st2.HTTP)
	}
}

func TestFallback_CustomCodes(t *testing.T) {
	// Custom codes carry no library default and resolve to the fallback.
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Code("totp_mismatch"), "")
	if st.HTTP != 400 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("fallback mismatch: got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}

	// The fallback itself is configurable.
	m2, err := New(WithFallback(422, codes.FailedPrecondition))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st2 := m2.Status(code.Code("totp_mismatch"), "")
	if st2.HTTP != 422 || st2.GRPC != codes.FailedPrecondition {
		t.Fatalf("configured fallback mismatch: got HTTP=%d GRPC=%v", st2.HTTP, st2.GRPC)
	}
}

func TestDescriptors_OverridesAndPrefixes(t *testing.T) {
	m, err := New(WithDescriptors(
		apis.ErrorDescriptor{Code: "unique", HTTPStatus: 418, GRPCCode: int(codes.Aborted)},
		apis.ErrorDescriptor{Code: "min", Field: "tags.*.name", HTTPStatus: 460, GRPCCode: int(codes.OutOfRange)},
		apis.ErrorDescriptor{Code: "max", GRPCCode: int(codes.DataLoss)}, // zero HTTP: only gRPC is overridden
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.Unique, "anything.at.all"); st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("fieldless descriptor must become an override; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
	if st := m.Status(code.Min, "tags.3.name"); st.HTTP != 460 || st.GRPC != codes.OutOfRange {
		t.Fatalf("fielded descriptor must become a prefix rule; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
	if st := m.Status(code.Min, "title"); st.HTTP != 400 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("descriptor must not leak beyond its field; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
	if st := m.Status(code.Max, ""); st.HTTP != 400 || st.GRPC != codes.DataLoss {
		t.Fatalf("zero HTTP status must keep the default; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unique, "tags.0", 409),
		WithGRPCPrefix(code.Unique, "tags.0", int(codes.AlreadyExists)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(code.Unique, "tags.0.name")
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="tags.0"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}

	// The fallback tier is visible for custom codes.
	exp2 := m.Explain(code.Code("totp_mismatch"), "")
	if !strings.Contains(exp2, `http: source=fallback -> 400`) {
		t.Fatalf("Explain must show the fallback tier:\n%s", exp2)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unique, "tags", 409),
		WithHTTPOverride(code.NoAssoc, 423),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.Unique, "tags.0.name")
				_ = m.Status(code.NoAssoc, "")
				_ = m.Status(code.Required, "author.profile.url")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.Required, "author.profile.url")
	}
}

func BenchmarkMapperStatus_PrefixHit(t *testing.B) {
	m, _ := New(
		WithHTTPPrefix(code.Unique, "tags", 409),
		WithGRPCPrefix(code.Unique, "tags", int(codes.AlreadyExists)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.Unique, "tags.0.name")
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride(code.Unique, 418),
		WithGRPCOverride(code.Unique, int(codes.Aborted)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.Unique, "tags.0.name")
	}
}

func BenchmarkMapperStatus_Fallback(t *testing.B) {
	// A custom code with no rules forces the fallback path.
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.Code("totp_mismatch"), "")
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
