package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/extract"
)

type stubAI struct {
	reply string
	err   error
	calls int
}

func (s *stubAI) ExtractName(_ context.Context, _ string, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestCascadeExtract(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		ai         *stubAI
		text       string
		want       string
		wantSource extract.Source
	}

	tests := map[string][]testCase{
		"ai path": {
			{
				name:       "valid ai candidate wins",
				ai:         &stubAI{reply: "Stefano"},
				text:       "mi chiamo stefano",
				want:       "Stefano",
				wantSource: extract.SourceAI,
			},
			{
				name:       "ai candidate is cleaned and cased",
				ai:         &stubAI{reply: " francesco. "},
				text:       "mi chiamo francesco",
				want:       "Francesco",
				wantSource: extract.SourceAI,
			},
		},
		"pattern fallback": {
			{
				name:       "ai error degrades to pattern",
				ai:         &stubAI{err: errors.New("service unavailable")},
				text:       "mi chiamo stefano",
				want:       "Stefano",
				wantSource: extract.SourcePattern,
			},
			{
				name:       "sentinel answer degrades to pattern",
				ai:         &stubAI{reply: "NESSUN_NOME"},
				text:       "sono marco",
				want:       "Marco",
				wantSource: extract.SourcePattern,
			},
			{
				name:       "invalid ai candidate degrades to pattern",
				ai:         &stubAI{reply: "1234"},
				text:       "il mio nome è luca",
				want:       "Luca",
				wantSource: extract.SourcePattern,
			},
			{
				name:       "nil ai client uses pattern only",
				ai:         nil,
				text:       "mi chiamo anna maria",
				want:       "Anna Maria",
				wantSource: extract.SourcePattern,
			},
		},
		"give up": {
			{
				name:       "both paths fail",
				ai:         &stubAI{err: errors.New("timeout")},
				text:       "ciao come stai",
				wantSource: extract.SourceNone,
			},
			{
				name:       "empty utterance",
				ai:         &stubAI{reply: "Stefano"},
				text:       "   ",
				wantSource: extract.SourceNone,
			},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()

					var ai extract.AIClient
					if tc.ai != nil {
						ai = tc.ai
					}
					c := extract.NewCascade(ai, nil)

					got := c.Extract(context.Background(), extract.KindName, tc.text)
					if got.Source != tc.wantSource {
						t.Fatalf("Extract(%q) source = %v, want %v", tc.text, got.Source, tc.wantSource)
					}
					if got.Candidate != tc.want {
						t.Errorf("Extract(%q) candidate = %q, want %q", tc.text, got.Candidate, tc.want)
					}
				})
			}
		})
	}
}

func TestCascadeSingleAIAttempt(t *testing.T) {
	t.Parallel()

	ai := &stubAI{err: errors.New("rate limited")}
	c := extract.NewCascade(ai, nil)

	res := c.Extract(context.Background(), extract.KindName, "mi chiamo stefano")
	if !res.Found() {
		t.Fatal("expected pattern fallback to produce a candidate")
	}
	if ai.calls != 1 {
		t.Errorf("AI client called %d times, want exactly 1", ai.calls)
	}
}
