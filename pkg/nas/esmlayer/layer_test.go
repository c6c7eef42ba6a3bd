package esmlayer

import (
	"testing"

	"github.com/gopacket/gopacket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/esm"
	"nas_esm/pkg/nas/ies"
)

func TestDecodeLayer(t *testing.T) {
	pdu := []byte{0x52, 0x01, 0xe8, 0x6f}
	packet := gopacket.NewPacket(pdu, LayerTypeESM, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())

	l, ok := packet.Layer(LayerTypeESM).(*ESM)
	require.True(t, ok)
	status, ok := l.Message.(*esm.EsmStatus)
	require.True(t, ok)
	assert.Equal(t, ies.EsmCauseProtocolErrorUnspecified, status.EsmCause)
	assert.Equal(t, pdu, l.LayerContents())
	assert.Empty(t, l.LayerPayload())
	assert.Nil(t, packet.ApplicationLayer())
}

func TestDecodeLayerTrailingOctets(t *testing.T) {
	pdu := []byte{0x52, 0x01, 0xe8, 0x6f, 0xde, 0xad}
	packet := gopacket.NewPacket(pdu, LayerTypeESM, gopacket.Default)
	require.Nil(t, packet.ErrorLayer())

	l := packet.Layer(LayerTypeESM).(*ESM)
	assert.Equal(t, pdu[:4], l.LayerContents())
	assert.Equal(t, gopacket.LayerTypePayload, l.NextLayerType())

	app := packet.ApplicationLayer()
	require.NotNil(t, app)
	assert.Equal(t, []byte{0xde, 0xad}, app.Payload())
}

func TestDecodeLayerErrors(t *testing.T) {
	testCases := []struct {
		name      string
		pdu       []byte
		want      error
		truncated bool
	}{
		{"truncated", []byte{0x02, 0x07, 0xd4, 0x05, 0x09}, codec.ErrBufferTooShort, true},
		{"unknown message type", []byte{0x02, 0x01, 0xc1}, codec.ErrUnknownMessageType, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packet := gopacket.NewPacket(tc.pdu, LayerTypeESM, gopacket.Default)
			failure := packet.ErrorLayer()
			require.NotNil(t, failure)
			assert.ErrorIs(t, failure.Error(), tc.want)
			assert.Equal(t, tc.truncated, packet.Metadata().Truncated)
			assert.Nil(t, packet.Layer(LayerTypeESM))
		})
	}
}

func TestSerializeLayer(t *testing.T) {
	buf := gopacket.NewSerializeBuffer()
	msg := esm.NewPdnDisconnectRequest(10, 5)
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, &ESM{Message: msg}))
	assert.Equal(t, []byte{0x02, 0x0a, 0xd2, 0x05}, buf.Bytes())

	assert.Error(t, gopacket.SerializeLayers(gopacket.NewSerializeBuffer(), gopacket.SerializeOptions{}, &ESM{}))
}
