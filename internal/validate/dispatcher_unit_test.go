package validate

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

var _ = Describe("Barriers dispatch", func() {
	var (
		mockCtrl   *gomock.Controller
		mockScopes *MockScopeValidator
		reg        *LimitationRegistry
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockScopes = NewMockScopeValidator(mockCtrl)
		reg = NewLimitationRegistry()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	newControlBarrier := func() (*spirv.State, *spirv.Instruction) {
		b := barrierBuilder(api.Version1_3)
		inst := &spirv.Instruction{
			Opcode:   api.OpcodeControlBarrier,
			Operands: []uint32{scopeWorkgroupID, scopeWorkgroupID, semanticsNoneID},
		}
		b.function(inst)
		return b.state(api.TargetEnvUniversal), inst
	}

	It("validates execution scope, then memory scope, then semantics", func() {
		s, inst := newControlBarrier()
		gomock.InOrder(
			mockScopes.EXPECT().
				ValidateExecutionScope(s, inst, uint32(scopeWorkgroupID)).
				Return(nil),
			mockScopes.EXPECT().
				ValidateMemoryScope(s, inst, uint32(scopeWorkgroupID)).
				Return(nil),
		)
		Expect(Barriers(s, mockScopes, reg, inst)).To(BeNil())
	})

	It("short-circuits on an execution scope failure", func() {
		s, inst := newControlBarrier()
		failure := &spirv.Diagnostic{Code: spirv.CodeInvalidScope, Inst: inst, Message: "bad scope"}
		mockScopes.EXPECT().
			ValidateExecutionScope(s, inst, uint32(scopeWorkgroupID)).
			Return(failure)
		// ValidateMemoryScope must not be called.
		Expect(Barriers(s, mockScopes, reg, inst)).To(BeIdenticalTo(failure))
	})

	It("passes the memory-scope operand for a memory barrier", func() {
		b := barrierBuilder(api.Version1_3)
		inst := &spirv.Instruction{
			Opcode:   api.OpcodeMemoryBarrier,
			Operands: []uint32{scopeWorkgroupID, semanticsNoneID},
		}
		b.function(inst)
		s := b.state(api.TargetEnvUniversal)

		mockScopes.EXPECT().
			ValidateMemoryScope(s, inst, uint32(scopeWorkgroupID)).
			Return(nil)
		Expect(Barriers(s, mockScopes, reg, inst)).To(BeNil())
	})

	It("never consults scopes for out-of-family opcodes", func() {
		b := barrierBuilder(api.Version1_3)
		inst := &spirv.Instruction{Opcode: api.OpcodeUndef, TypeID: typeInt32ID, ResultID: 40}
		b.function(inst)
		Expect(Barriers(b.state(api.TargetEnvUniversal), mockScopes, reg, inst)).To(BeNil())
	})
})
