package ies

import "nas_esm/pkg/nas/codec"

// 9.9.4.4 ESM cause
type EsmCause uint8

const (
	EsmCauseMinimumLength = 1
	EsmCauseMaximumLength = 1
)

const esmCauseName = "EsmCause"

const (
	EsmCauseOperatorDeterminedBarring                     EsmCause = 8
	EsmCauseInsufficientResources                         EsmCause = 26
	EsmCauseMissingOrUnknownAPN                           EsmCause = 27
	EsmCauseUnknownPDNType                                EsmCause = 28
	EsmCauseUserAuthenticationFailed                      EsmCause = 29
	EsmCauseRequestRejectedBySGWOrPGW                     EsmCause = 30
	EsmCauseRequestRejectedUnspecified                    EsmCause = 31
	EsmCauseServiceOptionNotSupported                     EsmCause = 32
	EsmCauseRequestedServiceOptionNotSubscribed           EsmCause = 33
	EsmCauseServiceOptionTemporarilyOutOfOrder            EsmCause = 34
	EsmCausePTIAlreadyInUse                               EsmCause = 35
	EsmCauseRegularDeactivation                           EsmCause = 36
	EsmCauseEPSQoSNotAccepted                             EsmCause = 37
	EsmCauseNetworkFailure                                EsmCause = 38
	EsmCauseReactivationRequested                         EsmCause = 39
	EsmCauseSemanticErrorInTheTFTOperation                EsmCause = 41
	EsmCauseSyntacticalErrorInTheTFTOperation             EsmCause = 42
	EsmCauseInvalidEPSBearerIdentity                      EsmCause = 43
	EsmCauseSemanticErrorsInPacketFilters                 EsmCause = 44
	EsmCauseSyntacticalErrorsInPacketFilters              EsmCause = 45
	EsmCausePTIMismatch                                   EsmCause = 47
	EsmCauseLastPDNDisconnectionNotAllowed                EsmCause = 49
	EsmCausePDNTypeIPv4OnlyAllowed                        EsmCause = 50
	EsmCausePDNTypeIPv6OnlyAllowed                        EsmCause = 51
	EsmCauseSingleAddressBearersOnlyAllowed               EsmCause = 52
	EsmCauseESMInformationNotReceived                     EsmCause = 53
	EsmCausePDNConnectionDoesNotExist                     EsmCause = 54
	EsmCauseMultiplePDNConnectionsForAPNNotAllowed        EsmCause = 55
	EsmCauseCollisionWithNetworkInitiatedRequest          EsmCause = 56
	EsmCausePDNTypeIPv4v6OnlyAllowed                      EsmCause = 57
	EsmCausePDNTypeNonIPOnlyAllowed                       EsmCause = 58
	EsmCauseUnsupportedQCIValue                           EsmCause = 59
	EsmCauseBearerHandlingNotSupported                    EsmCause = 60
	EsmCausePDNTypeEthernetOnlyAllowed                    EsmCause = 61
	EsmCauseMaximumNumberOfEPSBearersReached              EsmCause = 65
	EsmCauseRequestedAPNNotSupportedInCurrentRATAndPLMN   EsmCause = 66
	EsmCauseInvalidPTIValue                               EsmCause = 81
	EsmCauseSemanticallyIncorrectMessage                  EsmCause = 95
	EsmCauseInvalidMandatoryInformation                   EsmCause = 96
	EsmCauseMessageTypeNonExistentOrNotImplemented        EsmCause = 97
	EsmCauseMessageTypeNotCompatibleWithProtocolState     EsmCause = 98
	EsmCauseInformationElementNonExistentOrNotImplemented EsmCause = 99
	EsmCauseConditionalIEError                            EsmCause = 100
	EsmCauseMessageNotCompatibleWithProtocolState         EsmCause = 101
	EsmCauseProtocolErrorUnspecified                      EsmCause = 111
	EsmCauseAPNRestrictionValueIncompatible               EsmCause = 112
	EsmCauseMultipleAccessesToPDNConnectionNotAllowed     EsmCause = 113
)

func (c *EsmCause) Decode(buf []byte, iei uint8) (int, error) {
	n, err := decodeIEI(esmCauseName, buf, iei)
	if err != nil {
		return 0, err
	}
	if len(buf) < n+1 {
		return 0, codec.DecodeError(esmCauseName, codec.ErrBufferTooShort)
	}
	*c = EsmCause(buf[n])
	return n + 1, nil
}

func (c EsmCause) Encode(buf []byte, iei uint8) (int, error) {
	if len(buf) < ieiLen(iei)+1 {
		return 0, codec.EncodeError(esmCauseName, codec.ErrBufferTooShort)
	}
	n, _ := encodeIEI(esmCauseName, buf, iei)
	buf[n] = uint8(c)
	return n + 1, nil
}

func (c EsmCause) String() string {
	switch c {
	case EsmCauseOperatorDeterminedBarring:
		return "Operator Determined Barring"
	case EsmCauseInsufficientResources:
		return "Insufficient resources"
	case EsmCauseMissingOrUnknownAPN:
		return "Missing or unknown APN"
	case EsmCauseUnknownPDNType:
		return "Unknown PDN type"
	case EsmCauseUserAuthenticationFailed:
		return "User authentication failed"
	case EsmCauseRequestRejectedBySGWOrPGW:
		return "Request rejected by Serving GW or PDN GW"
	case EsmCauseRequestRejectedUnspecified:
		return "Request rejected, unspecified"
	case EsmCauseServiceOptionNotSupported:
		return "Service option not supported"
	case EsmCauseRequestedServiceOptionNotSubscribed:
		return "Requested service option not subscribed"
	case EsmCauseServiceOptionTemporarilyOutOfOrder:
		return "Service option temporarily out of order"
	case EsmCausePTIAlreadyInUse:
		return "PTI already in use"
	case EsmCauseRegularDeactivation:
		return "Regular deactivation"
	case EsmCauseEPSQoSNotAccepted:
		return "EPS QoS not accepted"
	case EsmCauseNetworkFailure:
		return "Network failure"
	case EsmCauseReactivationRequested:
		return "Reactivation requested"
	case EsmCauseSemanticErrorInTheTFTOperation:
		return "Semantic error in the TFT operation"
	case EsmCauseSyntacticalErrorInTheTFTOperation:
		return "Syntactical error in the TFT operation"
	case EsmCauseInvalidEPSBearerIdentity:
		return "Invalid EPS bearer identity"
	case EsmCauseSemanticErrorsInPacketFilters:
		return "Semantic errors in packet filter(s)"
	case EsmCauseSyntacticalErrorsInPacketFilters:
		return "Syntactical errors in packet filter(s)"
	case EsmCausePTIMismatch:
		return "PTI mismatch"
	case EsmCauseLastPDNDisconnectionNotAllowed:
		return "Last PDN disconnection not allowed"
	case EsmCausePDNTypeIPv4OnlyAllowed:
		return "PDN type IPv4 only allowed"
	case EsmCausePDNTypeIPv6OnlyAllowed:
		return "PDN type IPv6 only allowed"
	case EsmCauseSingleAddressBearersOnlyAllowed:
		return "Single address bearers only allowed"
	case EsmCauseESMInformationNotReceived:
		return "ESM information not received"
	case EsmCausePDNConnectionDoesNotExist:
		return "PDN connection does not exist"
	case EsmCauseMultiplePDNConnectionsForAPNNotAllowed:
		return "Multiple PDN connections for a given APN not allowed"
	case EsmCauseCollisionWithNetworkInitiatedRequest:
		return "Collision with network initiated request"
	case EsmCausePDNTypeIPv4v6OnlyAllowed:
		return "PDN type IPv4v6 only allowed"
	case EsmCausePDNTypeNonIPOnlyAllowed:
		return "PDN type non IP only allowed"
	case EsmCauseUnsupportedQCIValue:
		return "Unsupported QCI value"
	case EsmCauseBearerHandlingNotSupported:
		return "Bearer handling not supported"
	case EsmCausePDNTypeEthernetOnlyAllowed:
		return "PDN type Ethernet only allowed"
	case EsmCauseMaximumNumberOfEPSBearersReached:
		return "Maximum number of EPS bearers reached"
	case EsmCauseRequestedAPNNotSupportedInCurrentRATAndPLMN:
		return "Requested APN not supported in current RAT and PLMN combination"
	case EsmCauseInvalidPTIValue:
		return "Invalid PTI value"
	case EsmCauseSemanticallyIncorrectMessage:
		return "Semantically incorrect message"
	case EsmCauseInvalidMandatoryInformation:
		return "Invalid mandatory information"
	case EsmCauseMessageTypeNonExistentOrNotImplemented:
		return "Message type non-existent or not implemented"
	case EsmCauseMessageTypeNotCompatibleWithProtocolState:
		return "Message type not compatible with the protocol state"
	case EsmCauseInformationElementNonExistentOrNotImplemented:
		return "Information element non-existent or not implemented"
	case EsmCauseConditionalIEError:
		return "Conditional IE error"
	case EsmCauseMessageNotCompatibleWithProtocolState:
		return "Message not compatible with the protocol state"
	case EsmCauseProtocolErrorUnspecified:
		return "Protocol error, unspecified"
	case EsmCauseAPNRestrictionValueIncompatible:
		return "APN restriction value incompatible with active EPS bearer context"
	case EsmCauseMultipleAccessesToPDNConnectionNotAllowed:
		return "Multiple accesses to a PDN connection not allowed"
	default:
		return "Unknown cause"
	}
}
