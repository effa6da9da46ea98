package encoder_test

import (
	"testing"

	"github.com/lookbusy1344/word24asm/encoder"
	"github.com/stretchr/testify/assert"
)

func TestFirstWord_SimpleMove(t *testing.T) {
	// mov r1, r2: opcode=0 funct=0 src_mode=3 src_reg=1 dst_mode=3 dst_reg=2 ARE=A
	got := encoder.FirstWord(0, 0, 3, 2, 3, 1, encoder.AREAbsolute)
	want := (0 << 18) | (3 << 16) | (1 << 13) | (3 << 11) | (2 << 8) | (0 << 3) | 4
	assert.Equal(t, want, got)
}

func TestImmediateWord(t *testing.T) {
	assert.Equal(t, 44, encoder.ImmediateWord(5))
}

func TestDirectWord_MasksTo24Bits(t *testing.T) {
	got := encoder.DirectWord(1 << 22)
	assert.Equal(t, 0, got&^encoder.WordMask)
}

func TestExternalWord(t *testing.T) {
	assert.Equal(t, encoder.AREExternal, encoder.ExternalWord())
}

func TestRelativeWord_LoopExample(t *testing.T) {
	// LOOP at IC=3 (absolute 103), jmp &LOOP at IC=10 (absolute 110).
	got := encoder.RelativeWord(103, 10, 100)
	want := (((103 - 110 + 1) << 3) | encoder.AREAbsolute) & encoder.WordMask
	assert.Equal(t, want, got)
}

func TestAllWordsFitIn24Bits(t *testing.T) {
	words := []int{
		encoder.FirstWord(63, 31, 3, 7, 3, 7, 7),
		encoder.ImmediateWord(1 << 20),
		encoder.DirectWord(1 << 23),
		encoder.RelativeWord(-(1 << 20), 0, 100),
	}
	for _, w := range words {
		assert.Equal(t, w, w&encoder.WordMask, "word %d exceeds 24 bits", w)
	}
}
