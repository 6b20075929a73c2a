package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// LayerID identifies one of the six logical layers.
type LayerID int

// LayerCount is the fixed depth of every layout.
const LayerCount = 6

// Layers in display order.
var Layers = [LayerCount]LayerID{0, 1, 2, 3, 4, 5}

func (l LayerID) Valid() bool {
	return l >= 0 && int(l) < LayerCount
}

// Token is a raw key code as found in the layout matrix. Numbers are kept as
// their decimal text, so -1 becomes "-1".
type Token string

func (t *Token) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Token(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("token must be a string or a number, got %s: %w", string(data), err)
	}

	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("invalid numeric token %s: %w", n, err)
	}

	*t = Token(n.String())

	return nil
}

// Configuration is the decoded VIL file.
type Configuration struct {
	Version  int         `json:"version"`
	UID      uint64      `json:"uid"`
	Layout   [][][]Token `json:"layout"`
	TapDance [][]Token   `json:"tap_dance,omitempty"`
	Combo    [][]Token   `json:"combo,omitempty"`
}

type TapDanceInfo struct {
	Tap       string
	Hold      string
	DoubleTap string
	TapHold   string
}

type KeyLabel struct {
	MainText  string
	SubText   string
	SubTexts  []string
	IsSpecial bool
	// Empty marks unused matrix positions and KC_NO.
	Empty bool
}

// HasSub reports whether the label carries any secondary text.
func (k KeyLabel) HasSub() bool {
	return k.SubText != "" || len(k.SubTexts) > 0
}

type RowCol struct {
	Row int
	Col int
}

// KeyPosition is a key rectangle in pixel space. Rotation is in degrees,
// clockwise, about the key center.
type KeyPosition struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
}

type DrawingContext struct {
	Margin    float64
	KeyWidth  float64
	KeyHeight float64
	UnitX     float64
	UnitY     float64
}

// NewDrawingContext derives the unit spacing from key size and gap.
func NewDrawingContext(keyWidth, keyHeight, gap, margin float64) DrawingContext {
	return DrawingContext{
		Margin:    margin,
		KeyWidth:  keyWidth,
		KeyHeight: keyHeight,
		UnitX:     keyWidth + gap,
		UnitY:     keyHeight + gap,
	}
}

func DefaultDrawingContext() DrawingContext {
	return NewDrawingContext(78, 60, 4, 20)
}

type CanvasDimensions struct {
	Width  float64
	Height float64
}

// LayerLabels is one layer of resolved labels, indexed [row][col].
type LayerLabels [][]KeyLabel

// LayerGrid holds the resolved labels of every layer, indexed by LayerID.
type LayerGrid [LayerCount]LayerLabels

type Combo struct {
	Keys        []string
	Action      string
	Description string
	Index       int
}

// RecentFile is a previously opened configuration kept for quick reopening.
type RecentFile struct {
	ID        int64
	Name      string
	Timestamp time.Time
	Content   []byte
	Type      string
}
