package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// BlockType tags the content variant of a block. Spellings are part of the
// wire and storage format.
type BlockType string

const (
	BlockTypePlainText BlockType = "PlainText"
	BlockTypeCheckbox  BlockType = "Checkbox"
	BlockTypeImage     BlockType = "Image"
	BlockTypeCode      BlockType = "Code"
)

// Valid reports whether t is one of the known block types.
func (t BlockType) Valid() bool {
	switch t {
	case BlockTypePlainText, BlockTypeCheckbox, BlockTypeImage, BlockTypeCode:
		return true
	}
	return false
}

// BlockContent is the payload of a block. Exactly one concrete variant exists
// per BlockType; Type returns the tag the variant belongs to.
type BlockContent interface {
	Type() BlockType
}

type PlainTextContent struct {
	Text string `json:"text"`
}

func (PlainTextContent) Type() BlockType { return BlockTypePlainText }

type CheckboxContent struct {
	Text   string `json:"text"`
	Status string `json:"status"`
}

func (CheckboxContent) Type() BlockType { return BlockTypeCheckbox }

type ImageContent struct {
	URL string  `json:"url"`
	Alt *string `json:"alt,omitempty"`
}

func (ImageContent) Type() BlockType { return BlockTypeImage }

type CodeContent struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func (CodeContent) Type() BlockType { return BlockTypeCode }

// Block is a typed content unit within a note with an explicit display
// position. Positions are dense, zero-based and scoped per note.
type Block struct {
	ID        uuid.UUID
	BlockType BlockType
	Content   BlockContent
	NoteID    uuid.UUID
	Position  int32
}

// ContentMatchesType reports whether the content payload carries the shape
// declared by BlockType. The rule is a standing invariant checked on every
// write path.
func (b *Block) ContentMatchesType() bool {
	return b.Content != nil && b.Content.Type() == b.BlockType
}

// contentKeys maps the exact JSON key sets of untagged content payloads to
// their block type. The alt field of images is optional, hence two entries.
var contentKeys = map[string]BlockType{
	"text":          BlockTypePlainText,
	"status|text":   BlockTypeCheckbox,
	"url":           BlockTypeImage,
	"alt|url":       BlockTypeImage,
	"code|language": BlockTypeCode,
}

// DecodeContent parses an untagged content payload by matching its exact key
// set against the known variants. Payloads with extra, missing or unknown
// keys are rejected.
func DecodeContent(raw json.RawMessage) (BlockContent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("invalid block content: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t, ok := contentKeys[strings.Join(keys, "|")]
	if !ok {
		return nil, fmt.Errorf("unknown block content shape: %v", keys)
	}
	return DecodeContentAs(t, raw)
}

// DecodeContentAs parses a content payload into the variant declared by t.
// Unknown fields are rejected so that storage and wire payloads stay in the
// exact shape of the variant.
func DecodeContentAs(t BlockType, raw json.RawMessage) (BlockContent, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var (
		content BlockContent
		err     error
	)
	switch t {
	case BlockTypePlainText:
		var c PlainTextContent
		err = dec.Decode(&c)
		content = c
	case BlockTypeCheckbox:
		var c CheckboxContent
		err = dec.Decode(&c)
		content = c
	case BlockTypeImage:
		var c ImageContent
		err = dec.Decode(&c)
		content = c
	case BlockTypeCode:
		var c CodeContent
		err = dec.Decode(&c)
		content = c
	default:
		return nil, fmt.Errorf("unknown block type: %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s content: %w", t, err)
	}
	return content, nil
}
