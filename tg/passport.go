package tg

// PassportData is Telegram Passport data shared with the bot.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// PassportFile is a file uploaded to Telegram Passport.
type PassportFile struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size"`
	FileDate     int64  `json:"file_date"`
}

// EncryptedPassportElement is one document or field shared with the bot.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        string         `json:"data,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// EncryptedCredentials holds the data needed to decrypt the elements.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// PassportElementError reports a problem with a submitted element. Source
// selects which hash fields apply: "data" uses FieldName and DataHash,
// "front_side", "reverse_side", "selfie", "file" and "translation_file" use
// FileHash, "files" and "translation_files" use FileHashes, "unspecified"
// uses ElementHash.
type PassportElementError struct {
	Source      string   `json:"source"`
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	FieldName   string   `json:"field_name,omitempty"`
	DataHash    string   `json:"data_hash,omitempty"`
	FileHash    string   `json:"file_hash,omitempty"`
	FileHashes  []string `json:"file_hashes,omitempty"`
	ElementHash string   `json:"element_hash,omitempty"`
}

// PassportDataFieldError reports an error in a data field.
func PassportDataFieldError(elementType, field, dataHash, message string) PassportElementError {
	return PassportElementError{Source: "data", Type: elementType, FieldName: field, DataHash: dataHash, Message: message}
}

// PassportFileError reports an error in a single scan. source is one of
// "front_side", "reverse_side", "selfie", "file" or "translation_file".
func PassportFileError(source, elementType, fileHash, message string) PassportElementError {
	return PassportElementError{Source: source, Type: elementType, FileHash: fileHash, Message: message}
}

// PassportFilesError reports an error in a list of scans.
func PassportFilesError(elementType string, fileHashes []string, message string) PassportElementError {
	return PassportElementError{Source: "files", Type: elementType, FileHashes: fileHashes, Message: message}
}

// PassportUnspecifiedError reports an error that fits no other source.
func PassportUnspecifiedError(elementType, elementHash, message string) PassportElementError {
	return PassportElementError{Source: "unspecified", Type: elementType, ElementHash: elementHash, Message: message}
}
