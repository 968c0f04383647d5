package idl

import "encoding/json"

// Field is a named, typed value: an instruction argument or a struct field.
type Field struct {
	Name string   `json:"name"`
	Docs []string `json:"docs,omitempty"`
	Type Type     `json:"type"`
}

func (f *Field) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("field", d, "name", "type"); err != nil {
		return err
	}
	type plain Field
	return json.Unmarshal(d, (*plain)(f))
}

type Account struct {
	Name          string `json:"name"`
	Discriminator Bytes  `json:"discriminator,omitempty"`
}

func (a *Account) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("account", d, "name"); err != nil {
		return err
	}
	type plain Account
	return json.Unmarshal(d, (*plain)(a))
}

type Event struct {
	Name          string `json:"name"`
	Discriminator Bytes  `json:"discriminator,omitempty"`
}

func (e *Event) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("event", d, "name"); err != nil {
		return err
	}
	type plain Event
	return json.Unmarshal(d, (*plain)(e))
}

type ErrorCode struct {
	Code uint32  `json:"code"`
	Name string  `json:"name"`
	Msg  *string `json:"msg,omitempty"`
}

func (e *ErrorCode) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("error", d, "code", "name"); err != nil {
		return err
	}
	type plain ErrorCode
	return json.Unmarshal(d, (*plain)(e))
}

type Const struct {
	Name  string   `json:"name"`
	Docs  []string `json:"docs,omitempty"`
	Type  Type     `json:"type"`
	Value string   `json:"value"`
}

func (c *Const) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("constant", d, "name", "type", "value"); err != nil {
		return err
	}
	type plain Const
	return json.Unmarshal(d, (*plain)(c))
}

type Instruction struct {
	Name          string                   `json:"name"`
	Docs          []string                 `json:"docs,omitempty"`
	Discriminator Bytes                    `json:"discriminator,omitempty"`
	Accounts      []InstructionAccountItem `json:"accounts"`
	Args          []Field                  `json:"args"`
	Returns       *Type                    `json:"returns,omitempty"`
}

func (in Instruction) MarshalJSON() ([]byte, error) {
	type plain Instruction
	p := plain(in)
	if p.Accounts == nil {
		p.Accounts = []InstructionAccountItem{}
	}
	if p.Args == nil {
		p.Args = []Field{}
	}
	return marshalJSON(p)
}

func (in *Instruction) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("instruction", d, "name", "accounts", "args"); err != nil {
		return err
	}
	type plain Instruction
	return json.Unmarshal(d, (*plain)(in))
}
