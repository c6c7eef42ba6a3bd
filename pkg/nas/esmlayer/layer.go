// Package esmlayer exposes plain ESM messages as a gopacket layer, so ESM
// PDUs pulled out of S1AP or captures can go through gopacket pipelines.
package esmlayer

import (
	"errors"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"

	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/esm"
)

var LayerTypeESM = gopacket.RegisterLayerType(2024, gopacket.LayerTypeMetadata{
	Name:    "NAS-ESM",
	Decoder: gopacket.DecodeFunc(decodeESM),
})

// ESM is a decoded plain ESM message. Octets left after the message, if the
// message type does not consume them, become the layer payload.
type ESM struct {
	layers.BaseLayer
	Message esm.Message
}

func (l *ESM) LayerType() gopacket.LayerType {
	return LayerTypeESM
}

func (l *ESM) CanDecode() gopacket.LayerClass {
	return LayerTypeESM
}

func (l *ESM) NextLayerType() gopacket.LayerType {
	if len(l.Payload) == 0 {
		return gopacket.LayerTypeZero
	}
	return gopacket.LayerTypePayload
}

func (l *ESM) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	msg, n, err := esm.Decode(data)
	if err != nil {
		if errors.Is(err, codec.ErrBufferTooShort) {
			df.SetTruncated()
		}
		return err
	}
	l.Message = msg
	l.BaseLayer = layers.BaseLayer{Contents: data[:n], Payload: data[n:]}
	return nil
}

func (l *ESM) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if l.Message == nil {
		return errors.New("esmlayer: no message to serialize")
	}
	pdu, err := esm.Marshal(l.Message)
	if err != nil {
		return err
	}
	bytes, err := b.PrependBytes(len(pdu))
	if err != nil {
		return err
	}
	copy(bytes, pdu)
	return nil
}

func decodeESM(data []byte, p gopacket.PacketBuilder) error {
	l := &ESM{}
	if err := l.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(l)
	if len(l.Payload) == 0 {
		return nil
	}
	return p.NextDecoder(gopacket.LayerTypePayload)
}
