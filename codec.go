package rgx

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// nodeDoc is the serialized form of one pattern node, discriminated by
// Kind. It exists so tools can store and exchange built trees; it is not a
// parser for regex text.
type nodeDoc struct {
	Kind      string     `json:"kind"`
	Text      string     `json:"text,omitempty"`
	Raw       bool       `json:"raw,omitempty"`
	Priority  float64    `json:"priority,omitempty"`
	Children  []*nodeDoc `json:"children,omitempty"`
	Child     *nodeDoc   `json:"child,omitempty"`
	Items     []itemDoc  `json:"items,omitempty"`
	Negated   bool       `json:"negated,omitempty"`
	Min       int        `json:"min,omitempty"`
	Max       *int       `json:"max,omitempty"`
	Lazy      bool       `json:"lazy,omitempty"`
	Name      string     `json:"name,omitempty"`
	Capturing bool       `json:"capturing,omitempty"`
	Behind    bool       `json:"behind,omitempty"`
	Group     int        `json:"group,omitempty"`
	Yes       *nodeDoc   `json:"yes,omitempty"`
	No        *nodeDoc   `json:"no,omitempty"`
	Flags     string     `json:"flags,omitempty"`
}

// itemDoc is one serialized class member: exactly one of Char, Lo/Hi, or
// Meta is set.
type itemDoc struct {
	Char string `json:"char,omitempty"`
	Lo   string `json:"lo,omitempty"`
	Hi   string `json:"hi,omitempty"`
	Meta string `json:"meta,omitempty"`
}

// MarshalTree serializes a pattern tree to its JSON document form.
// References built with RefTo carry node identity and cannot be
// serialized; use numbered or named references in documents.
func MarshalTree(p Pattern) ([]byte, error) {
	doc, err := encodeNode(p)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalTree decodes a JSON document back into a pattern tree, running
// the same validation as the constructors.
func UnmarshalTree(data []byte) (Pattern, error) {
	var doc nodeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &BuildError{Err: ErrBadDoc, Detail: err.Error()}
	}
	return decodeNode(&doc)
}

func encodeNode(p Pattern) (*nodeDoc, error) {
	switch x := p.(type) {
	case literal:
		return &nodeDoc{Kind: "literal", Text: x.text, Raw: x.raw}, nil
	case Token:
		return &nodeDoc{Kind: "token", Text: string(x)}, nil
	case custom:
		return &nodeDoc{Kind: "custom", Text: x.text, Priority: x.prio}, nil
	case concatNode:
		children, err := encodeNodes(x.parts)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "concat", Children: children}, nil
	case altNode:
		children, err := encodeNodes(x.parts)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "or", Children: children}, nil
	case *CharClass:
		items, err := encodeItems(x.items)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "class", Items: items, Negated: x.negated}, nil
	case *Range:
		child, err := encodeNode(x.inner)
		if err != nil {
			return nil, err
		}
		doc := &nodeDoc{Kind: "repeat", Child: child, Min: x.min, Lazy: x.lazy}
		if !x.unbounded {
			max := x.max
			doc.Max = &max
		}
		return doc, nil
	case *Group:
		child, err := encodeNode(x.inner)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "group", Child: child, Capturing: x.capturing, Name: x.name}, nil
	case lookaround:
		child, err := encodeNode(x.inner)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "look", Child: child, Behind: x.behind, Negated: x.negated}, nil
	case conditional:
		yes, err := encodeNode(x.yes)
		if err != nil {
			return nil, err
		}
		no, err := encodeNode(x.no)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "cond", Group: x.group, Yes: yes, No: no}, nil
	case flagScope:
		child, err := encodeNode(x.inner)
		if err != nil {
			return nil, err
		}
		return &nodeDoc{Kind: "flags", Child: child, Flags: x.flags}, nil
	case backref:
		if x.target != nil {
			return nil, &BuildError{Err: ErrBadDoc, Detail: "node reference has no serialized form"}
		}
		return &nodeDoc{Kind: "ref", Group: x.num, Name: x.name}, nil
	case comment:
		return &nodeDoc{Kind: "comment", Text: string(x)}, nil
	default:
		return nil, &BuildError{Err: ErrBadDoc, Detail: fmt.Sprintf("unknown node %T", p)}
	}
}

func encodeNodes(ps []Pattern) ([]*nodeDoc, error) {
	out := make([]*nodeDoc, 0, len(ps))
	for _, p := range ps {
		doc, err := encodeNode(p)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func encodeItems(items []ClassItem) ([]itemDoc, error) {
	out := make([]itemDoc, 0, len(items))
	for _, it := range items {
		switch x := it.(type) {
		case classChar:
			out = append(out, itemDoc{Char: string(rune(x))})
		case classSpan:
			doc := itemDoc{}
			if !x.openLo {
				doc.Lo = string(x.lo)
			}
			if !x.openHi {
				doc.Hi = string(x.hi)
			}
			out = append(out, doc)
		case classMeta:
			out = append(out, itemDoc{Meta: x.text})
		default:
			return nil, &BuildError{Err: ErrBadDoc, Detail: fmt.Sprintf("unknown class member %T", it)}
		}
	}
	return out, nil
}

func decodeNode(doc *nodeDoc) (Pattern, error) {
	switch doc.Kind {
	case "literal":
		if doc.Raw {
			return Raw(doc.Text), nil
		}
		return Text(doc.Text), nil
	case "token":
		return Token(doc.Text), nil
	case "custom":
		return RawAt(doc.Text, doc.Priority), nil
	case "concat":
		parts, err := decodeNodes(doc.Children)
		if err != nil {
			return nil, err
		}
		return Concat(parts...), nil
	case "or":
		parts, err := decodeNodes(doc.Children)
		if err != nil {
			return nil, err
		}
		return Or(parts...), nil
	case "class":
		items, err := decodeItems(doc.Items)
		if err != nil {
			return nil, err
		}
		cls, err := NewClass(items...)
		if err != nil {
			return nil, err
		}
		if doc.Negated {
			cls = cls.Reverse()
		}
		return cls, nil
	case "repeat":
		child, err := decodeChild(doc)
		if err != nil {
			return nil, err
		}
		var q *Range
		if doc.Max == nil {
			if q, err = AtLeast(child, doc.Min); err != nil {
				return nil, err
			}
		} else if q, err = Between(child, doc.Min, *doc.Max); err != nil {
			return nil, err
		}
		if doc.Lazy {
			q = q.Lazy()
		}
		return q, nil
	case "group":
		child, err := decodeChild(doc)
		if err != nil {
			return nil, err
		}
		switch {
		case doc.Name != "":
			return Named(doc.Name, child)
		case doc.Capturing:
			return Capture(child), nil
		default:
			return NonCapture(child), nil
		}
	case "look":
		child, err := decodeChild(doc)
		if err != nil {
			return nil, err
		}
		switch {
		case doc.Behind && doc.Negated:
			return NegLookbehind(child), nil
		case doc.Behind:
			return Lookbehind(child), nil
		case doc.Negated:
			return NegLookahead(child), nil
		default:
			return Lookahead(child), nil
		}
	case "cond":
		if doc.Yes == nil || doc.No == nil {
			return nil, &BuildError{Err: ErrBadDoc, Detail: "cond requires yes and no branches"}
		}
		yes, err := decodeNode(doc.Yes)
		if err != nil {
			return nil, err
		}
		no, err := decodeNode(doc.No)
		if err != nil {
			return nil, err
		}
		return Conditional(doc.Group, yes, no), nil
	case "flags":
		child, err := decodeChild(doc)
		if err != nil {
			return nil, err
		}
		return WithFlags(child, doc.Flags), nil
	case "ref":
		if doc.Name != "" {
			return NamedRef(doc.Name)
		}
		return Ref(doc.Group), nil
	case "comment":
		// the stored text is already escaped
		return comment(doc.Text), nil
	default:
		return nil, &BuildError{Err: ErrBadDoc, Detail: fmt.Sprintf("unknown kind %q", doc.Kind)}
	}
}

func decodeChild(doc *nodeDoc) (Pattern, error) {
	if doc.Child == nil {
		return nil, &BuildError{Err: ErrBadDoc, Detail: doc.Kind + " requires a child node"}
	}
	return decodeNode(doc.Child)
}

func decodeNodes(docs []*nodeDoc) ([]Pattern, error) {
	out := make([]Pattern, 0, len(docs))
	for _, d := range docs {
		p, err := decodeNode(d)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}
	return out, nil
}

func decodeItems(docs []itemDoc) ([]ClassItem, error) {
	out := make([]ClassItem, 0, len(docs))
	for _, d := range docs {
		switch {
		case d.Meta != "":
			out = append(out, MetaItem(Token(d.Meta)))
		case d.Char != "":
			r, size := utf8.DecodeRuneInString(d.Char)
			if size != len(d.Char) {
				return nil, &BuildError{Err: ErrBadDoc, Detail: fmt.Sprintf("char member %q is not a single character", d.Char)}
			}
			out = append(out, Ch(r))
		case d.Lo != "" && d.Hi != "":
			lo, _ := utf8.DecodeRuneInString(d.Lo)
			hi, _ := utf8.DecodeRuneInString(d.Hi)
			out = append(out, Span(lo, hi))
		case d.Lo != "":
			lo, _ := utf8.DecodeRuneInString(d.Lo)
			out = append(out, classSpan{lo: lo, openHi: true})
		case d.Hi != "":
			hi, _ := utf8.DecodeRuneInString(d.Hi)
			out = append(out, classSpan{hi: hi, openLo: true})
		default:
			return nil, &BuildError{Err: ErrBadDoc, Detail: "empty class member"}
		}
	}
	return out, nil
}
