// Package pdf implements the DocumentEncryptor port on top of pdfcpu.
// pdfcpu owns all PDF internals: parsing, page copying, RC4/AES key
// derivation and serialisation. This adapter only maps paths and errors
// between the domain and the library.
package pdf
