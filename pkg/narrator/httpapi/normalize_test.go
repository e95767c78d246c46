package httpapi

import (
	"errors"
	"testing"

	"dungeon-master-be/pkg/narrator"
)

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantRole    string
		wantContent string
		wantErr     bool
	}{
		{
			name:        "explicit role and content",
			body:        `{"role":"assistant","content":"hi"}`,
			wantRole:    "assistant",
			wantContent: "hi",
		},
		{
			name:        "explicit role is lower-cased",
			body:        `{"role":"Assistant","content":"hi"}`,
			wantRole:    "assistant",
			wantContent: "hi",
		},
		{
			name:        "openai style choices",
			body:        `{"choices":[{"message":{"content":"hi"}}]}`,
			wantRole:    "assistant",
			wantContent: "hi",
		},
		{
			name:        "choices uses first element only",
			body:        `{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`,
			wantRole:    "assistant",
			wantContent: "first",
		},
		{
			name:        "bare message field",
			body:        `{"message":"hi"}`,
			wantRole:    "assistant",
			wantContent: "hi",
		},
		{
			name:        "top-level message wins over choices",
			body:        `{"message":"direct","choices":[{"message":{"content":"ignored"}}]}`,
			wantRole:    "assistant",
			wantContent: "direct",
		},
		{
			name:        "explicit shape wins over everything",
			body:        `{"role":"ASSISTANT","content":"direct","message":"ignored","choices":[{"message":{"content":"ignored"}}]}`,
			wantRole:    "assistant",
			wantContent: "direct",
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "role without content",
			body:    `{"role":"assistant"}`,
			wantErr: true,
		},
		{
			name:    "message is not a string",
			body:    `{"message":{"content":"hi"}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>gateway timeout</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeReply([]byte(tt.body))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if !errors.Is(err, ErrUnrecognizedReply) {
					t.Fatalf("expected ErrUnrecognizedReply, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := narrator.Message{Role: tt.wantRole, Content: tt.wantContent}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}
