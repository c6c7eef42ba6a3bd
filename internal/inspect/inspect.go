// Package inspect decodes ESM PDUs for the esmtool command and reports what
// they carry.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/mohae/deepcopy"

	"nas_esm/internal/common/logger"
	"nas_esm/pkg/config"
	"nas_esm/pkg/nas/codec"
	"nas_esm/pkg/nas/esm"
	"nas_esm/pkg/nas/ies"
)

type Inspector struct {
	*logger.Logger
}

func New(l *logger.Logger) *Inspector {
	return &Inspector{Logger: l}
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{codec.ErrInvalidBuffer, "invalid_buffer"},
	{codec.ErrBufferTooShort, "buffer_too_short"},
	{codec.ErrInvalidLength, "invalid_length"},
	{codec.ErrValueOutOfRange, "value_out_of_range"},
	{codec.ErrUnexpectedIEI, "unexpected_iei"},
	{codec.ErrComprehensionRequired, "comprehension_required"},
	{codec.ErrInvalidProtocolDiscriminator, "invalid_protocol_discriminator"},
	{codec.ErrUnknownMessageType, "unknown_message_type"},
}

// ErrorKind maps a codec error to the name used by config.Vector.Error.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// Decode decodes one PDU and logs its contents.
func (i *Inspector) Decode(pdu []byte) (esm.Message, error) {
	msg, n, err := esm.Decode(pdu)
	if err != nil {
		i.Error("Failed to decode ESM message of %d octets: %v", len(pdu), err)
		return nil, err
	}
	if n < len(pdu) {
		i.Warn("%d trailing octets left after %s", len(pdu)-n, msg.Type())
	}
	i.report(msg)
	i.Debug("Decoded record:\n%s", spew.Sdump(msg))
	return msg, nil
}

func (i *Inspector) report(msg esm.Message) {
	h := msg.GetHeader()
	i.Info("Receive %s, ebi %d pti %d", msg.Type(), h.EpsBearerIdentity, h.ProcedureTransactionIdentity)

	switch m := msg.(type) {
	case *esm.EsmStatus:
		i.Error("ESM status, cause: %s", m.EsmCause)

	case *esm.BearerResourceAllocationRequest:
		i.Info("  Linked EPS bearer identity: %d", m.LinkedEpsBearerIdentity)
		i.Info("  TFT operation %d with %d packet filters", m.TrafficFlowAggregate.OperationCode, len(m.TrafficFlowAggregate.PacketFilters))
		i.reportQos(&m.RequiredTrafficFlowQos)
		if m.ProtocolConfigurationOptions != nil {
			i.reportPco(m.ProtocolConfigurationOptions.Units)
		}
		if m.DeviceProperties != nil {
			i.Info("  Low priority: %t", *m.DeviceProperties == ies.DevicePropertiesLowPriority)
		}
		if m.ExtendedProtocolConfigurationOptions != nil {
			i.reportPco(m.ExtendedProtocolConfigurationOptions.Units)
		}

	case *esm.BearerResourceAllocationReject:
		i.Error("Bearer resource allocation rejected, cause: %s", m.EsmCause)
		if m.T3496Value != nil {
			if d, ok := m.T3496Value.Duration(); ok {
				i.Info("  T3496: %s", d)
			} else {
				i.Info("  T3496: deactivated")
			}
		}
		if m.ReAttemptIndicator != nil {
			i.Info("  Re-attempt indicator: ratc %t eplmnc %t", m.ReAttemptIndicator.Ratc, m.ReAttemptIndicator.Eplmnc)
		}
		if m.ProtocolConfigurationOptions != nil {
			i.reportPco(m.ProtocolConfigurationOptions.Units)
		}

	case *esm.PdnDisconnectRequest:
		i.Info("  Linked EPS bearer identity: %d", m.LinkedEpsBearerIdentity)
		if m.ProtocolConfigurationOptions != nil {
			i.reportPco(m.ProtocolConfigurationOptions.Units)
		}

	case *esm.EsmInformationResponse:
		if m.AccessPointName != nil {
			i.Info("  APN: %s", *m.AccessPointName)
		}
		if m.ProtocolConfigurationOptions != nil {
			i.reportPco(m.ProtocolConfigurationOptions.Units)
		}
	}
}

func (i *Inspector) reportQos(q *ies.EpsQualityOfService) {
	i.Info("  QCI: %d", q.Qci)
	if q.BitRates != nil {
		i.Info("  MBR ul/dl: %d/%d kbps, GBR ul/dl: %d/%d kbps",
			ies.BitRateKbps(q.BitRates.MaxBitRateUplink), ies.BitRateKbps(q.BitRates.MaxBitRateDownlink),
			ies.BitRateKbps(q.BitRates.GuaranteedBitRateUplink), ies.BitRateKbps(q.BitRates.GuaranteedBitRateDownlink))
	}
}

func (i *Inspector) reportPco(units []ies.PcoUnit) {
	for _, unit := range units {
		i.Info("  PCO Unit: Id=0x%04x Len=%d", unit.Id, len(unit.Contents))
	}
}

type Result struct {
	Name   string
	Passed bool
	Reason string
}

// Verify checks one vector: expected failures must fail with the configured
// kind, everything else must survive decode, encode and decode again.
func (i *Inspector) Verify(v config.Vector) Result {
	res := Result{Name: v.Name}
	fail := func(format string, args ...any) Result {
		res.Reason = fmt.Sprintf(format, args...)
		i.Error("Vector %s failed: %s", v.Name, res.Reason)
		return res
	}

	pdu, err := v.Bytes()
	if err != nil {
		return fail("%v", err)
	}

	msg, n, err := esm.Decode(pdu)
	if v.Error != "" {
		if err == nil {
			return fail("decoded as %s, expected %s", msg.Type(), v.Error)
		}
		if kind := ErrorKind(err); kind != v.Error {
			return fail("got %v, expected %s", err, v.Error)
		}
		res.Passed = true
		i.Info("Vector %s rejected as expected: %v", v.Name, err)
		return res
	}
	if err != nil {
		return fail("decode: %v", err)
	}
	if v.Message != "" && msg.Type().String() != v.Message {
		return fail("decoded as %s, expected %s", msg.Type(), v.Message)
	}

	snapshot := deepcopy.Copy(msg)
	out, err := esm.Marshal(msg)
	if err != nil {
		return fail("encode: %v", err)
	}
	if !reflect.DeepEqual(snapshot, msg) {
		return fail("encoding modified the record")
	}
	if !bytes.Equal(out, pdu[:n]) {
		return fail("re-encoded %x, want %x", out, pdu[:n])
	}

	again, m, err := esm.Decode(out)
	if err != nil {
		return fail("decode of re-encoded pdu: %v", err)
	}
	if m != len(out) || !reflect.DeepEqual(again, msg) {
		return fail("re-decoded record differs")
	}

	res.Passed = true
	i.Info("Vector %s passed (%s, %d octets)", v.Name, msg.Type(), n)
	return res
}

// VerifyAll runs every vector and reports whether all of them passed.
func (i *Inspector) VerifyAll(vectors []config.Vector) (bool, []Result) {
	results := make([]Result, 0, len(vectors))
	allPassed := true
	for _, v := range vectors {
		r := i.Verify(v)
		allPassed = allPassed && r.Passed
		results = append(results, r)
	}
	return allPassed, results
}
