package introspection

// Type kinds as they appear in introspection results. LIST and NON_NULL
// occur only inside type references, never as top-level type kinds.
const (
	KindScalar      = "SCALAR"
	KindObject      = "OBJECT"
	KindInterface   = "INTERFACE"
	KindUnion       = "UNION"
	KindEnum        = "ENUM"
	KindInputObject = "INPUT_OBJECT"
	KindList        = "LIST"
	KindNonNull     = "NON_NULL"
)

// Schema is the decoded "__schema" object.
type Schema struct {
	QueryType        *TypeRef `json:"queryType"`
	MutationType     *TypeRef `json:"mutationType"`
	SubscriptionType *TypeRef `json:"subscriptionType"`
	Types            []Type   `json:"types"`
}

// Type is one entry of the schema's "types" list.
type Type struct {
	Kind          string       `json:"kind"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Fields        []Field      `json:"fields"`
	InputFields   []InputValue `json:"inputFields"`
	Interfaces    []TypeRef    `json:"interfaces"`
	EnumValues    []EnumValue  `json:"enumValues"`
	PossibleTypes []TypeRef    `json:"possibleTypes"`
}

// Field is an output field of an OBJECT or INTERFACE type.
type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Args              []InputValue `json:"args"`
	Type              *TypeRef     `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason string       `json:"deprecationReason"`
}

// InputValue is a field argument or an input-object field.
// DefaultValue is a pointer so that an absent default and an explicit
// "null" default stay distinguishable.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue is one value of an ENUM type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

// TypeRef is a possibly-wrapped type reference. For LIST and NON_NULL
// kinds the name is empty and OfType holds the wrapped reference; the
// chain terminates at a named kind with OfType nil.
type TypeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}
