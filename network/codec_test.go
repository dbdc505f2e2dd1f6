package network_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qldtransit/stopnet/network"
	"github.com/qldtransit/stopnet/routes"
	"github.com/qldtransit/stopnet/vehicles"
)

// sampleFile is a network with every section populated: four stops, a train
// route and a bus route, and three vehicles.
const sampleFile = `4
stop0:0:1
stop1:-1:0
stop2:4:2
stop3:2:-8
2
train,red,1:stop0|stop2|stop1
bus,blue,2:stop1|stop3
3
train,123,30,1,2
train,42,60,1,3
bus,412,20,2,ABC123
`

// TestDecode verifies the sections, the rebuilt routing state, and the
// vehicle assignments of the sample file.
func TestDecode(t *testing.T) {
	n, err := network.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	require.Equal(t, 4, n.StopCount())
	require.Len(t, n.Routes(), 2)
	require.Len(t, n.Vehicles(), 3)

	red := n.Routes()[0]
	assert.Equal(t, routes.Train, red.Kind())
	assert.Equal(t, "red", red.Name())
	assert.Len(t, red.Transports(), 2)

	// Route edges drive the routing tables: stop0-stop2 costs 5,
	// stop2-stop1 costs 7, stop1-stop3 costs 11.
	s0 := n.FindStop("stop0")
	s2 := n.FindStop("stop2")
	s3 := n.FindStop("stop3")
	require.NotNil(t, s0)
	assert.Equal(t, int64(5), n.CostTo(s0.ID(), s2.ID()))
	assert.Equal(t, int64(23), n.CostTo(s0.ID(), s3.ID()))
	assert.Equal(t, s2.ID(), n.NextHopToward(s0.ID(), s3.ID()))

	// Vehicles start at their route's first stop.
	train := n.Vehicles()[0]
	assert.Equal(t, 123, train.ID())
	assert.Equal(t, s0, train.CurrentStop())

	bus, ok := n.Vehicles()[2].(*vehicles.Bus)
	require.True(t, ok)
	assert.Equal(t, "ABC123", bus.RegistrationNumber())
}

// TestEncode_RoundTrip verifies Decode(Encode(n)) reproduces the file byte
// for byte.
func TestEncode_RoundTrip(t *testing.T) {
	n, err := network.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, n.Encode(&sb))
	assert.Equal(t, sampleFile, sb.String())
}

// TestDecode_Empty verifies the minimal all-zero file.
func TestDecode_Empty(t *testing.T) {
	n, err := network.Decode(strings.NewReader("0\n0\n0\n"))
	require.NoError(t, err)
	assert.Zero(t, n.StopCount())
	assert.Empty(t, n.Routes())
	assert.Empty(t, n.Vehicles())
}

// TestDecode_Errors walks the structural failure modes.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"bad stop count", "x\n0\n0\n"},
		{"negative count", "-1\n0\n0\n"},
		{"short stop section", "2\nstop0:0:0\n0\n0\n"},
		{"bad stop line", "1\nstop0\n0\n0\n"},
		{"bad coordinate", "1\nstop0:a:0\n0\n0\n"},
		{"duplicate stop", "2\nstop0:0:0\nstop0:0:0\n0\n0\n"},
		{"missing route count", "1\nstop0:0:0\n"},
		{"trailing content", "0\n0\n0\nleftover\n"},
		{"blank trailing line", "0\n0\n0\n\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, network.ErrFormat)
		})
	}
}

// TestDecode_SectionErrors verifies route and vehicle line failures surface
// their package's format error.
func TestDecode_SectionErrors(t *testing.T) {
	badRoute := "1\nstop0:0:0\n1\ntrain,red,1:Ghost\n0\n"
	_, err := network.Decode(strings.NewReader(badRoute))
	assert.ErrorIs(t, err, routes.ErrFormat)

	badVehicle := "1\nstop0:0:0\n1\nbus,loop,1:stop0\n1\nbus,1,40,99,ABC\n"
	_, err = network.Decode(strings.NewReader(badVehicle))
	assert.ErrorIs(t, err, vehicles.ErrFormat)
}

// TestSaveLoad verifies the file-level helpers round-trip through disk.
func TestSaveLoad(t *testing.T) {
	n, err := network.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "network.txt")
	require.NoError(t, n.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleFile, string(raw))

	loaded, err := network.Load(path)
	require.NoError(t, err)
	assert.Equal(t, n.StopCount(), loaded.StopCount())

	_, err = network.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
