package ies

import (
	"fmt"

	"nas_esm/pkg/nas/codec"
)

// 9.8 Message type, EPS session management messages
type MessageType uint8

const (
	MessageTypeMinimumLength = 1
	MessageTypeMaximumLength = 1
)

const messageTypeName = "MessageType"

const (
	ActivateDefaultEpsBearerContextRequest   MessageType = 0xc1
	ActivateDefaultEpsBearerContextAccept    MessageType = 0xc2
	ActivateDefaultEpsBearerContextReject    MessageType = 0xc3
	ActivateDedicatedEpsBearerContextRequest MessageType = 0xc5
	ActivateDedicatedEpsBearerContextAccept  MessageType = 0xc6
	ActivateDedicatedEpsBearerContextReject  MessageType = 0xc7
	ModifyEpsBearerContextRequest            MessageType = 0xc9
	ModifyEpsBearerContextAccept             MessageType = 0xca
	ModifyEpsBearerContextReject             MessageType = 0xcb
	DeactivateEpsBearerContextRequest        MessageType = 0xcd
	DeactivateEpsBearerContextAccept         MessageType = 0xce
	PdnConnectivityRequest                   MessageType = 0xd0
	PdnConnectivityReject                    MessageType = 0xd1
	PdnDisconnectRequest                     MessageType = 0xd2
	PdnDisconnectReject                      MessageType = 0xd3
	BearerResourceAllocationRequest          MessageType = 0xd4
	BearerResourceAllocationReject           MessageType = 0xd5
	BearerResourceModificationRequest        MessageType = 0xd6
	BearerResourceModificationReject         MessageType = 0xd7
	EsmInformationRequest                    MessageType = 0xd9
	EsmInformationResponse                   MessageType = 0xda
	Notification                             MessageType = 0xdb
	EsmDummyMessage                          MessageType = 0xdc
	EsmStatus                                MessageType = 0xe8
	RemoteUeReport                           MessageType = 0xe9
	RemoteUeReportResponse                   MessageType = 0xea
	EsmDataTransport                         MessageType = 0xeb
)

var messageTypeNames = map[MessageType]string{
	ActivateDefaultEpsBearerContextRequest:   "Activate default EPS bearer context request",
	ActivateDefaultEpsBearerContextAccept:    "Activate default EPS bearer context accept",
	ActivateDefaultEpsBearerContextReject:    "Activate default EPS bearer context reject",
	ActivateDedicatedEpsBearerContextRequest: "Activate dedicated EPS bearer context request",
	ActivateDedicatedEpsBearerContextAccept:  "Activate dedicated EPS bearer context accept",
	ActivateDedicatedEpsBearerContextReject:  "Activate dedicated EPS bearer context reject",
	ModifyEpsBearerContextRequest:            "Modify EPS bearer context request",
	ModifyEpsBearerContextAccept:             "Modify EPS bearer context accept",
	ModifyEpsBearerContextReject:             "Modify EPS bearer context reject",
	DeactivateEpsBearerContextRequest:        "Deactivate EPS bearer context request",
	DeactivateEpsBearerContextAccept:         "Deactivate EPS bearer context accept",
	PdnConnectivityRequest:                   "PDN connectivity request",
	PdnConnectivityReject:                    "PDN connectivity reject",
	PdnDisconnectRequest:                     "PDN disconnect request",
	PdnDisconnectReject:                      "PDN disconnect reject",
	BearerResourceAllocationRequest:          "Bearer resource allocation request",
	BearerResourceAllocationReject:           "Bearer resource allocation reject",
	BearerResourceModificationRequest:        "Bearer resource modification request",
	BearerResourceModificationReject:         "Bearer resource modification reject",
	EsmInformationRequest:                    "ESM information request",
	EsmInformationResponse:                   "ESM information response",
	Notification:                             "Notification",
	EsmDummyMessage:                          "ESM dummy message",
	EsmStatus:                                "ESM status",
	RemoteUeReport:                           "Remote UE report",
	RemoteUeReportResponse:                   "Remote UE report response",
	EsmDataTransport:                         "ESM data transport",
}

func (t *MessageType) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(messageTypeName, buf, iei)
	if err != nil {
		return 0, err
	}
	if len(buf) < n+1 {
		return 0, codec.DecodeError(messageTypeName, codec.ErrBufferTooShort)
	}
	*t = MessageType(buf[n])
	return n + 1, nil
}

func (t MessageType) Encode(buf []byte, iei uint8) (int, error) {
	if len(buf) < ieiLen(iei)+1 {
		return 0, codec.EncodeError(messageTypeName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(messageTypeName, buf, iei)
	buf[n] = uint8(t)
	return n + 1, nil
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown message type 0x%02x", uint8(t))
}
