package session

import "testing"

func TestParseScript(t *testing.T) {
	s, err := ParseScript("R*3 rj .*2 L Q")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}

	var got []Input
	for {
		in, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, in)
	}
	if len(got) != 8 {
		t.Fatalf("Next yielded %d inputs", len(got))
	}
	if !got[0].Right || got[0].Jump {
		t.Errorf("step 0 = %+v", got[0])
	}
	if !got[3].Right || !got[3].Jump {
		t.Errorf("step 3 = %+v", got[3])
	}
	if got[4] != (Input{}) || got[5] != (Input{}) {
		t.Errorf("idle steps = %+v %+v", got[4], got[5])
	}
	if !got[6].Left || !got[7].Quit {
		t.Errorf("tail = %+v %+v", got[6], got[7])
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"X", "R*", "R*-1", "*3", "R*abc"} {
		t.Run(src, func(t *testing.T) {
			if _, err := ParseScript(src); err == nil {
				t.Fatalf("ParseScript(%q) succeeded", src)
			}
		})
	}
}
