package normalizers

import "errors"

var (
	// ErrParamDecode is returned when passback_params is not a decodable mapping.
	ErrParamDecode = errors.New("passback params decode failed")
	// ErrInvalidRecord is returned when a required raw field is missing or malformed.
	ErrInvalidRecord = errors.New("invalid attempt record")
)
