package codec

import (
	"github.com/google/uuid"

	"github.com/shaban/bytewire/wire"
)

// EncodeUUID writes id's sixteen bytes verbatim, with no length prefix: a
// UUID's size is fixed.
func EncodeUUID(out *wire.Output, id uuid.UUID) error {
	return out.Write(id[:])
}

// DecodeUUID reads sixteen bytes into a uuid.UUID.
func DecodeUUID(in *wire.Input) (uuid.UUID, error) {
	var id uuid.UUID
	if err := in.ReadInto(id[:]); err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}
