// Copyright 2022 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package presence

import (
	"encoding/xml"
	"strconv"

	"mellium.im/xmlstream"
)

// Available is the payload of an available presence: the show and status
// values to advertise and the priority of this resource.
// It is normally wrapped in a stanza.Presence by the caller; this package
// never decides when a presence should be sent.
type Available struct {
	Show     Show
	Status   string
	Priority int8
}

// TokenReader implements xmlstream.Marshaler.
func (a Available) TokenReader() xml.TokenReader {
	var payloads []xml.TokenReader
	if a.Show != ShowNone {
		payloads = append(payloads, xmlstream.Wrap(
			xmlstream.Token(xml.CharData(a.Show)),
			xml.StartElement{Name: xml.Name{Local: "show"}},
		))
	}
	if a.Status != "" {
		payloads = append(payloads, xmlstream.Wrap(
			xmlstream.Token(xml.CharData(a.Status)),
			xml.StartElement{Name: xml.Name{Local: "status"}},
		))
	}
	if a.Priority != 0 {
		payloads = append(payloads, xmlstream.Wrap(
			xmlstream.Token(xml.CharData(strconv.Itoa(int(a.Priority)))),
			xml.StartElement{Name: xml.Name{Local: "priority"}},
		))
	}
	return xmlstream.MultiReader(payloads...)
}

// WriteXML implements xmlstream.WriterTo.
func (a Available) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return xmlstream.Copy(w, a.TokenReader())
}

// MarshalXML implements xml.Marshaler.
func (a Available) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	_, err := a.WriteXML(e)
	if err != nil {
		return err
	}
	return e.Flush()
}
