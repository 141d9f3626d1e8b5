package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-sheetchart/dialogs"
	"github.com/andareed/siftly-sheetchart/render"
	"github.com/andareed/siftly-sheetchart/viewport"
	"github.com/andareed/siftly-sheetchart/visibility"
)

func TestWriteFrameCSV(t *testing.T) {
	ds := levels(t, 10)
	f := render.NewFrame(ds, viewport.Range{Start: 2, End: 4}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteFrameCSV(&buf, f))
	assert.Equal(t, "Date,Level,Alarm\nd003,12,2\nd004,13,3\nd005,14,4\n", buf.String())
}

func TestWriteFrameCSVSkipsHidden(t *testing.T) {
	ds := levels(t, 3)
	f := render.NewFrame(ds, viewport.Range{Start: 0, End: 0}, visibility.Set{"Level": {}}, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteFrameCSV(&buf, f))
	assert.Equal(t, "Date,Alarm\nd001,0\n", buf.String())
}

func TestWriteExportFile(t *testing.T) {
	ds := levels(t, 20)
	f := render.NewFrame(ds, viewport.Range{Start: 0, End: 19}, nil, nil)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "w.csv")
	require.NoError(t, writeExportFile(dialogs.ExportCSV, csvPath, f, render.PNGOptions{}))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "d020")

	pngPath := filepath.Join(dir, "w.png")
	require.NoError(t, writeExportFile(dialogs.ExportPNG, pngPath, f, render.PNGOptions{Width: 320, Height: 200}))
	data, err = os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))

	err = writeExportFile(dialogs.ExportCSV, filepath.Join(dir, "missing", "w.csv"), f, render.PNGOptions{})
	assert.Error(t, err)
}

func TestWriteExportFileRemovesFailedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := writeExportFile(dialogs.ExportPNG, path, render.Frame{}, render.PNGOptions{Width: 320, Height: 200})
	require.ErrorIs(t, err, render.ErrNothingToPlot)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportName(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 30)
	assert.Equal(t, "levels-draft-1-30.png", m.exportName(m.focused(), dialogs.ExportPNG))

	press(m, "p")
	c := m.focused()
	assert.Regexp(t, `^levels-[0-9a-z]{7}-1-30\.csv$`, m.exportName(c, dialogs.ExportCSV))
}

func TestExportFocusedRunsOffLoop(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 30)
	path := filepath.Join(t.TempDir(), "out.csv")

	cmd := m.exportFocused(dialogs.ExportCSV, path)
	require.NotNil(t, cmd)
	msg := cmd().(exportDoneMsg)
	require.NoError(t, msg.err)

	m.Update(msg)
	assert.Equal(t, "success", m.ui.noticeType)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
