package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		rows    [][]string
		headers []string
		want    string
	}{
		{
			name:    "no rows",
			title:   "S3 Buckets in us-east-1",
			rows:    nil,
			headers: []string{"BucketName", "Region", "CreationDate"},
			want: "=======================\n" +
				"S3 Buckets in us-east-1\n" +
				"=======================\n" +
				"(no resources found)\n",
		},
		{
			name:  "columns sized by header and widest cell",
			title: "EC2 Instances in eu-west-1",
			rows: [][]string{
				{"i-0123456789abcdef0", "running", ""},
				{"i-1", "stopped", "web-server"},
			},
			headers: []string{"InstanceId", "State", "Name"},
			want: "==========================\n" +
				"EC2 Instances in eu-west-1\n" +
				"==========================\n" +
				"InstanceId          | State   | Name      \n" +
				"--------------------+---------+-----------\n" +
				"i-0123456789abcdef0 | running |           \n" +
				"i-1                 | stopped | web-server\n",
		},
		{
			name:    "width counts characters not bytes",
			title:   "T",
			rows:    [][]string{{"héllo"}},
			headers: []string{"Name"},
			want: "=\nT\n=\n" +
				"Name \n" +
				"-----\n" +
				"héllo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.title, tt.rows, tt.headers))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderDoesNotModifyInputs(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"ccc", "d"}}
	headers := []string{"X", "Y"}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "title", rows, headers))

	assert.Equal(t, [][]string{{"a", "b"}, {"ccc", "d"}}, rows)
	assert.Equal(t, []string{"X", "Y"}, headers)
}

func TestColumnWidths(t *testing.T) {
	widths := ColumnWidths([][]string{{"abcdef", "x"}, {"ab", ""}}, []string{"Id", "Status"})
	assert.Equal(t, []int{6, 6}, widths)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRenderWriteError(t *testing.T) {
	err := Render(failingWriter{}, "title", [][]string{{"a"}}, []string{"A"})
	assert.Error(t, err)
}
