package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, kindLiteral, classify(0))
	assert.Equal(t, kindLiteral, classify(MaxLiteral))
	assert.Equal(t, kindRegister, classify(RegBase))
	assert.Equal(t, kindRegister, classify(RegEnd))
	assert.Equal(t, kindReserved, classify(RegEnd+1))
	assert.Equal(t, kindReserved, classify(65535))
}

func TestResolveReadLiteral(t *testing.T) {
	m := &Machine{}
	assert.Equal(t, Word(42), m.resolveRead(42))
}

func TestResolveReadRegister(t *testing.T) {
	m := &Machine{}
	m.mem[RegBase+3] = 7
	assert.Equal(t, Word(7), m.resolveRead(RegBase+3))
}

func TestResolveWriteRegister(t *testing.T) {
	m := &Machine{}
	fault := m.resolveWrite(RegBase+1, 99)
	assert.Nil(t, fault)
	assert.Equal(t, Word(99), m.mem[RegBase+1])
}

func TestResolveWriteLiteralFaults(t *testing.T) {
	m := &Machine{}
	fault := m.resolveWrite(5, 99)
	if assert.NotNil(t, fault) {
		assert.Equal(t, WriteToLiteral, fault.Kind)
	}
}

func TestResolveWriteReservedFaults(t *testing.T) {
	m := &Machine{}
	fault := m.resolveWrite(40000, 99)
	if assert.NotNil(t, fault) {
		assert.Equal(t, InvalidArgument, fault.Kind)
	}
}
