package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	mock_cli "github.com/at-ishikawa/ankigen/internal/mocks/cli"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInteractiveCLI_Run(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mock_cli.MockSession)
		wantErr    bool
	}{
		{
			name: "end of session stops the loop",
			setupMocks: func(m *mock_cli.MockSession) {
				gomock.InOrder(
					m.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					m.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
		},
		{
			name: "session error is returned",
			setupMocks: func(m *mock_cli.MockSession) {
				m.EXPECT().Session(gomock.Any()).Return(errors.New("broken console"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := mock_cli.NewMockSession(ctrl)
			tt.setupMocks(session)

			cli := newInteractiveCLI(strings.NewReader(""), io.Discard)
			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInteractiveCLI_readLine(t *testing.T) {
	cli := newInteractiveCLI(strings.NewReader("first\r\nsecond\nlast"), io.Discard)

	for _, want := range []string{"first", "second", "last"} {
		got, err := cli.readLine()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := cli.readLine()
	assert.ErrorIs(t, err, io.EOF)
}
