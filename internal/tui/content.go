package tui

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/ciphered/internal/cipher"
)

const labelWidth = 9

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(labelWidth)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
)

// ContentOptions is the text the tool tabs work on.
type ContentOptions struct {
	Sample string
	Probe  string
	XORKey string
}

type contentRow struct {
	label string
	value string
	err   bool
}

// codecContent shows an encode/decode round trip plus a decode of the probe
// text, whose failure is rendered as a row instead of being returned.
type codecContent struct {
	codec  cipher.Codec
	sample []byte
	probe  string
}

func (c codecContent) rows() []contentRow {
	encoded := c.codec.Encode(c.sample)
	return []contentRow{
		{label: "input", value: printable(c.sample)},
		{label: "encoded", value: encoded},
		decodeRow("decoded", c.codec, encoded),
		{label: "probe", value: printable([]byte(c.probe))},
		decodeRow("result", c.codec, c.probe),
	}
}

func (c codecContent) Render(width, height int) string {
	return renderRows(c.rows(), width, height)
}

// xorContent is a codecContent over the XOR codec with a histogram of the
// ciphertext's high nibbles underneath.
type xorContent struct {
	codecContent
	key      cipher.XOR
	barStyle lipgloss.Style
}

func (c xorContent) Render(width, height int) string {
	rows := append([]contentRow{{label: "key", value: printable(c.key.Key)}}, c.rows()...)
	text := renderRows(rows, width, height)

	// One blank separator row and one label row around the bars.
	chartHeight := height - len(rows) - 2
	if chartHeight < 3 || width < histogramWidth || len(c.sample) == 0 {
		return text
	}
	chart := nibbleHistogram(c.key.Apply(c.sample), chartHeight, c.barStyle)
	return lipgloss.JoinVertical(lipgloss.Left, text, "", chart)
}

type digestContent struct {
	digest cipher.Digest
	sample []byte
}

func (c digestContent) Render(width, height int) string {
	return renderRows([]contentRow{
		{label: "input", value: printable(c.sample)},
		{label: c.digest.Name(), value: c.digest.Sum(c.sample)},
	}, width, height)
}

type placeholderContent struct {
	title string
}

func (c placeholderContent) Render(width, height int) string {
	return renderEmptyPagePlaceholder(c.title, width, height)
}

// renderEmptyPagePlaceholder renders a centered placeholder for tabs with no tool yet.
func renderEmptyPagePlaceholder(title string, width, height int) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("7")).
		Render(title)

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render("Coming soon")

	block := lipgloss.JoinVertical(lipgloss.Center, heading, subtitle)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func decodeRow(label string, codec cipher.Codec, text string) contentRow {
	out, err := codec.Decode(text)
	if err != nil {
		return contentRow{label: label, value: err.Error(), err: true}
	}
	return contentRow{label: label, value: printable(out)}
}

func renderRows(rows []contentRow, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, min(len(rows), height))
	for _, r := range rows[:min(len(rows), height)] {
		value := r.value
		if r.err {
			value = errorStyle.Render("✗ " + value)
		}
		lines = append(lines, ansi.Truncate(labelStyle.Render(r.label)+value, width, "…"))
	}
	return strings.Join(lines, "\n")
}

// printable returns b as text when it is printable UTF-8, otherwise as hex.
func printable(b []byte) string {
	if !utf8.Valid(b) {
		return "0x" + hex.EncodeToString(b)
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return "0x" + hex.EncodeToString(b)
		}
	}
	return string(b)
}

// histogramWidth fits 16 one-cell bars with one-cell gaps.
const histogramWidth = 16*2 - 1

func nibbleHistogram(data []byte, height int, style lipgloss.Style) string {
	var buckets [16]int
	for _, b := range data {
		buckets[b>>4]++
	}

	bc := barchart.New(histogramWidth, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for i, n := range buckets {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: fmt.Sprintf("%x", i), Value: float64(n), Style: style},
			},
		})
	}
	bc.Draw()

	labels := make([]string, len(buckets))
	for i := range buckets {
		labels[i] = fmt.Sprintf("%x", i)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), strings.Join(labels, " "))
}

// DefaultRegistry builds the six tabs: four tools and two placeholders.
func DefaultRegistry(opts ContentOptions, skin Skin) Registry {
	sample := []byte(opts.Sample)
	xor := cipher.XOR{Key: []byte(opts.XORKey)}
	xorPalette := skin.PaletteFor(2)

	return NewRegistry(
		TabSpec{
			Name:    "base64",
			Palette: skin.PaletteFor(0),
			Content: codecContent{codec: cipher.Base64{}, sample: sample, probe: opts.Probe},
		},
		TabSpec{
			Name:    "Hex",
			Palette: skin.PaletteFor(1),
			Content: codecContent{codec: cipher.Hex{}, sample: sample, probe: opts.Probe},
		},
		TabSpec{
			Name:    "XOR",
			Palette: xorPalette,
			Content: xorContent{
				codecContent: codecContent{codec: xor, sample: sample, probe: opts.Probe},
				key:          xor,
				barStyle: lipgloss.NewStyle().
					Foreground(lipgloss.Color(xorPalette.C700)).
					Background(lipgloss.Color(xorPalette.C700)),
			},
		},
		TabSpec{
			Name:    "MD5",
			Palette: skin.PaletteFor(3),
			Content: digestContent{digest: cipher.MD5{}, sample: sample},
		},
		TabSpec{
			Name:    "tab5",
			Palette: skin.PaletteFor(4),
			Content: placeholderContent{title: "tab5"},
		},
		TabSpec{
			Name:    "tab6",
			Palette: skin.PaletteFor(5),
			Content: placeholderContent{title: "tab6"},
		},
	)
}
