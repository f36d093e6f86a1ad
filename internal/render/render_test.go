package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"image/png"
	"io"
	"testing"

	"islandgen/internal/biome"
	"islandgen/internal/core"
	"islandgen/internal/island"
	"islandgen/internal/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
)

// stripe returns a 3x2 field whose rows are deep water then mountain, with a
// desert cell at column 2 of row 0.
func stripe(t *testing.T) *island.Island {
	t.Helper()
	f, err := terrain.New(3, 2)
	require.NoError(t, err)
	copy(f.Cells(), []int{0, 0, 110, 255, 255, 255})
	cfg := island.DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	cfg.Params.WaterLine = 100
	return &island.Island{Config: cfg, Raw: f, Height: f, Biomes: biome.Classify(f, 100)}
}

func TestRasterAddressing(t *testing.T) {
	isl := stripe(t)
	img := Raster(isl.Biomes)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	assert.Equal(t, color.NRGBA{R: 89, G: 111, B: 161}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 228, G: 191, B: 139}, img.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{R: 181, G: 186, B: 182}, img.NRGBAAt(0, 1))
	for i := 3; i < len(img.Pix); i += 4 {
		require.Zero(t, img.Pix[i], "alpha must be zero")
	}

	opaque := Opaque(isl.Biomes)
	assert.Equal(t, color.NRGBA{R: 228, G: 191, B: 139, A: 0xff}, opaque.NRGBAAt(2, 0))
}

func TestWriteBMPHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBMP(&buf, stripe(t), Options{}))
	b := buf.Bytes()
	require.Greater(t, len(b), 30)
	assert.Equal(t, "BM", string(b[:2]))
	assert.Equal(t, int32(3), int32(binary.LittleEndian.Uint32(b[18:])))
	assert.Equal(t, int32(2), int32(binary.LittleEndian.Uint32(b[22:])))
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(b[28:]), "32 bits per pixel")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, stripe(t), Options{}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, a := img.At(2, 0).RGBA()
	assert.Equal(t, []uint32{228, 191, 139, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestPreviewSize(t *testing.T) {
	isl := stripe(t)
	img := Preview(isl.Biomes, 0)
	assert.Equal(t, 160, img.Bounds().Dx(), "narrow maps get a readable legend width")

	wide, err := terrain.New(50, 10)
	require.NoError(t, err)
	g := biome.Classify(wide, 100)
	img = Preview(g, 4)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 40+legendRowHeight*biome.Count+legendPad*2, img.Bounds().Dy())

	r, gg, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{89, 111, 161}, []uint32{r >> 8, gg >> 8, b >> 8})
}

func TestElevationRamp(t *testing.T) {
	ramp := ElevationRamp(100)
	require.Len(t, ramp, terrain.MaxElevation+1)
	for _, c := range ramp {
		require.Equal(t, uint8(0xff), c.A)
	}
	assert.Greater(t, int(ramp[0].B), int(ramp[0].R), "deep water is blue")
	assert.Greater(t, int(ramp[255].R)+int(ramp[255].G)+int(ramp[255].B), int(ramp[101].R)+int(ramp[101].G)+int(ramp[101].B), "peaks are lighter than the shore")

	isl := stripe(t)
	img := Elevation(isl.Height, 100)
	assert.Equal(t, ramp[255], img.RGBAAt(1, 1))
}

func TestFormats(t *testing.T) {
	for _, name := range []string{"bmp", "heightmap", "png", "preview"} {
		assert.Contains(t, Formats(), name)
	}
	_, err := Lookup("bnp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownName))
	assert.Contains(t, err.Error(), `"bmp"`)

	name, err := DefaultName("out/island", "heightmap")
	require.NoError(t, err)
	assert.Equal(t, "out/island-heightmap.png", name)

	name, err = DefaultName("island", "PNG")
	require.NoError(t, err)
	assert.Equal(t, "island.png", name)
}

func TestSave(t *testing.T) {
	fs := memfs.New()
	isl := stripe(t)
	require.NoError(t, Save(fs, "maps/island.bmp", "bmp", isl, Options{}))

	f, err := fs.Open("maps/island.bmp")
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "BM", string(body[:2]))

	entries, err := fs.ReadDir("maps")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is renamed away")

	err = Save(fs, "maps/island.gif", "gif", isl, Options{})
	assert.True(t, errors.Is(err, core.ErrUnknownName))
}

func TestSaveFailureLeavesNoFile(t *testing.T) {
	boom := errors.New("boom")
	Register("failing", Exporter{Ext: ".x", Write: func(w io.Writer, _ *island.Island, _ Options) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	}})

	fs := memfs.New()
	err := Save(fs, "out/broken.x", "failing", stripe(t), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
