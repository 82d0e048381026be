package codec

import (
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// EncodeParams encodes canonical field values into wire arguments in the
// definition's declared parameter order. Both the staging builder and the
// execution dispatcher encode through this one function, so the two call
// shapes cannot diverge from the catalog.
func EncodeParams(def *contracts.ActionDefinition, fields map[string]any) ([]contracts.EncodedArg, error) {
	args := make([]contracts.EncodedArg, 0, len(def.Params))
	for _, spec := range def.Params {
		v, present := fields[spec.Name]
		if !present || v == nil {
			if !spec.Optional {
				return nil, &contracts.ValidationError{
					Kind:   def.ID,
					Field:  spec.Name,
					Reason: "required parameter missing",
				}
			}
			args = append(args, contracts.EncodedArg{
				Name:  spec.Name,
				Type:  spec.Type,
				Bytes: WrapOption(nil, false),
			})
			continue
		}
		raw, err := Encode(spec.Type, v)
		if err != nil {
			return nil, &contracts.ValidationError{
				Kind:   def.ID,
				Field:  spec.Name,
				Reason: err.Error(),
			}
		}
		if spec.Optional {
			raw = WrapOption(raw, true)
		}
		args = append(args, contracts.EncodedArg{Name: spec.Name, Type: spec.Type, Bytes: raw})
	}
	return args, nil
}
