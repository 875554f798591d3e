/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("author.profile", 422))
	must(t, tr.Insert("tags.0.name", 409))
	must(t, tr.Insert("account.billing.address", 400))

	if v, ok, p := tr.MatchWithPattern("author.profile.url"); !ok || v != 422 || p != "author.profile" {
		t.Fatalf("match author.profile.url => ok=%v v=%v p=%q; want ok=true v=422 p=author.profile", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("tags.0.name"); !ok || v != 409 || p != "tags.0.name" {
		t.Fatalf("match tags.0.name => ok=%v v=%v p=%q; want ok=true v=409 p=tags.0.name", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("account.billing.address.zip"); !ok || v != 400 || p != "account.billing.address" {
		t.Fatalf("match billing.address.zip => ok=%v v=%v p=%q; want 400, account.billing.address", ok, v, p)
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("tags.*.name", 498))
	must(t, tr.Insert("tags.0.name", 409)) // exact should beat wildcard at same depth

	// exact match wins
	if v, ok, p := tr.MatchWithPattern("tags.0.name"); !ok || v != 409 || p != "tags.0.name" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	// wildcard matches a different index segment
	if v, ok, p := tr.MatchWithPattern("tags.7.name.lang"); !ok || v != 498 || p != "tags.*.name" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	// wildcard must match exactly one segment, not zero
	if _, ok, _ := tr.MatchWithPattern("tags.name"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	// wildcard path can produce deeper match than an existing (but shallow) exact branch
	must(t, tr.Insert("a.*.c", 7))
	// create an exact branch that doesn't lead to a value at the same depth
	// (common pitfall for greedy algorithms)
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestMixedCaseAndIndexSegments(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("tags.0.longName", 400))

	if v, ok, _ := tr.MatchWithPattern("tags.0.longName.extra"); !ok || v != 400 {
		t.Fatalf("camelized segment should match: ok=%v v=%v", ok, v)
	}
	if _, ok, _ := tr.MatchWithPattern("tags.1.longName"); ok {
		t.Fatalf("index segments must match exactly")
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	if err := tr.Insert("", 1); err == nil {
		t.Fatalf("empty prefix must be invalid")
	}
	if err := tr.Insert("tag name", 1); err == nil {
		t.Fatalf("segment with a space must be invalid")
	}
	if err := tr.Insert("a..b", 1); err == nil {
		t.Fatalf("empty segment must be invalid")
	}
	if err := tr.Insert("tags[0].name", 1); err == nil {
		t.Fatalf("bracket syntax must be invalid; indexes are dotted segments")
	}
	if err := tr.Insert("*", 1); err == nil {
		t.Fatalf("single wildcard without context should be invalid (segment OK, but prefix must have at least one seg before/after)")
	}
	// NB: The above rule is stylistic; if you want "*" allowed at root, remove this test.

	if _, ok, _ := tr.MatchWithPattern("tag name"); ok {
		t.Fatalf("match should be false for invalid path")
	}
	if _, ok, _ := tr.MatchWithPattern("a..b"); ok {
		t.Fatalf("match should be false for invalid path")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
