package textbuf

import "golang.org/x/text/unicode/norm"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity preallocates the buffer for byteCap bytes of encoded text.
func WithCapacity(byteCap int) Option {
	return func(b *Buffer) {
		if byteCap > 0 {
			b.capacity = byteCap
		}
	}
}

// WithNormalization applies the given Unicode normalization form to all
// incoming text (construction, inserts, replacements). Already-stored text
// is never renormalized.
func WithNormalization(form norm.Form) Option {
	return func(b *Buffer) {
		b.normalize = true
		b.form = form
	}
}

// WithNFC configures the buffer to canonically compose incoming text.
func WithNFC() Option {
	return WithNormalization(norm.NFC)
}

// WithNFD configures the buffer to canonically decompose incoming text.
func WithNFD() Option {
	return WithNormalization(norm.NFD)
}
