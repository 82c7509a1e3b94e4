package domain

// EncryptedPayload is the wire format of an encrypted message: both fields
// are standard (padded) base64. ContentEncrypted decodes to ciphertext of
// plaintext length plus the 16-byte authentication tag; Nonce decodes to
// exactly 24 random bytes. The two fields travel together at all times; a
// payload with only one of them is invalid.
type EncryptedPayload struct {
	ContentEncrypted string `json:"content_encrypted"`
	Nonce            string `json:"encryption_nonce"`
}
