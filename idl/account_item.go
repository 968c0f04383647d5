package idl

import (
	"encoding/json"
	"fmt"
)

type AccountItemKind int

const (
	SingleAccount AccountItemKind = iota
	CompositeAccounts
)

// InstructionAccountItem is an account passed to an instruction: a Single
// account, or a Composite group of nested items.
type InstructionAccountItem struct {
	Kind      AccountItemKind
	Single    *InstructionAccount
	Composite *InstructionAccounts
}

func SingleItem(a InstructionAccount) InstructionAccountItem {
	return InstructionAccountItem{Kind: SingleAccount, Single: &a}
}

func CompositeItem(name string, items ...InstructionAccountItem) InstructionAccountItem {
	return InstructionAccountItem{
		Kind:      CompositeAccounts,
		Composite: &InstructionAccounts{Name: name, Accounts: items},
	}
}

// Name is the name of the account or account group.
func (it *InstructionAccountItem) Name() *string {
	switch {
	case it.Kind == SingleAccount && it.Single != nil:
		return &it.Single.Name
	case it.Kind == CompositeAccounts && it.Composite != nil:
		return &it.Composite.Name
	}
	return nil
}

func (it InstructionAccountItem) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case SingleAccount:
		if it.Single == nil {
			return nil, fmt.Errorf("single account item without account")
		}
		return marshalJSON(it.Single)
	case CompositeAccounts:
		if it.Composite == nil {
			return nil, fmt.Errorf("composite account item without accounts")
		}
		return marshalJSON(it.Composite)
	}
	return nil, fmt.Errorf("unknown account item kind %d", it.Kind)
}

// UnmarshalJSON decodes an object with an "accounts" key as a composite.
func (it *InstructionAccountItem) UnmarshalJSON(d []byte) error {
	m, err := requireKeys("instruction account", d, "name")
	if err != nil {
		return err
	}
	if _, ok := m["accounts"]; ok {
		c := &InstructionAccounts{}
		if err := json.Unmarshal(d, c); err != nil {
			return err
		}
		*it = InstructionAccountItem{Kind: CompositeAccounts, Composite: c}
		return nil
	}
	s := &InstructionAccount{}
	if err := json.Unmarshal(d, s); err != nil {
		return err
	}
	*it = InstructionAccountItem{Kind: SingleAccount, Single: s}
	return nil
}

type InstructionAccount struct {
	Name      string   `json:"name"`
	Docs      []string `json:"docs,omitempty"`
	Writable  bool     `json:"writable,omitempty"`
	Signer    bool     `json:"signer,omitempty"`
	Optional  bool     `json:"optional,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Pda       *Pda     `json:"pda,omitempty"`
	Relations []string `json:"relations,omitempty"`
}

type InstructionAccounts struct {
	Name     string                   `json:"name"`
	Accounts []InstructionAccountItem `json:"accounts"`
}

func (a InstructionAccounts) MarshalJSON() ([]byte, error) {
	type plain InstructionAccounts
	p := plain(a)
	if p.Accounts == nil {
		p.Accounts = []InstructionAccountItem{}
	}
	return marshalJSON(p)
}

type Pda struct {
	Seeds   []Seed `json:"seeds"`
	Program *Seed  `json:"program,omitempty"`
}

func (p Pda) MarshalJSON() ([]byte, error) {
	type plain Pda
	q := plain(p)
	if q.Seeds == nil {
		q.Seeds = []Seed{}
	}
	return marshalJSON(q)
}

func (p *Pda) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("pda", d, "seeds"); err != nil {
		return err
	}
	type plain Pda
	return json.Unmarshal(d, (*plain)(p))
}

type SeedKind int

const (
	ConstSeed SeedKind = iota
	ArgSeed
	AccountSeed
)

// Seed is a PDA seed. Value is set for ConstSeed, Path for ArgSeed and
// AccountSeed, and Account optionally names the account type of an
// AccountSeed.
type Seed struct {
	Kind    SeedKind
	Value   Bytes
	Path    string
	Account *string
}

func (s Seed) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ConstSeed:
		value := s.Value
		if value == nil {
			value = Bytes{}
		}
		return marshalJSON(struct {
			Kind  string `json:"kind"`
			Value Bytes  `json:"value"`
		}{"const", value})
	case ArgSeed:
		return marshalJSON(struct {
			Kind string `json:"kind"`
			Path string `json:"path"`
		}{"arg", s.Path})
	case AccountSeed:
		return marshalJSON(struct {
			Kind    string  `json:"kind"`
			Path    string  `json:"path"`
			Account *string `json:"account,omitempty"`
		}{"account", s.Path, s.Account})
	}
	return nil, fmt.Errorf("unknown seed kind %d", s.Kind)
}

func (s *Seed) UnmarshalJSON(d []byte) error {
	m, kind, err := kindOf("seed", d)
	if err != nil {
		return err
	}
	var res Seed
	switch kind {
	case "const":
		if _, err := requireKeys("const seed", d, "value"); err != nil {
			return err
		}
		res.Kind = ConstSeed
		err = decodeField("const seed", m, "value", &res.Value)
	case "arg":
		if _, err := requireKeys("arg seed", d, "path"); err != nil {
			return err
		}
		res.Kind = ArgSeed
		err = decodeField("arg seed", m, "path", &res.Path)
	case "account":
		if _, err := requireKeys("account seed", d, "path"); err != nil {
			return err
		}
		res.Kind = AccountSeed
		if err = decodeField("account seed", m, "path", &res.Path); err == nil {
			err = decodeField("account seed", m, "account", &res.Account)
		}
	default:
		return fmt.Errorf("unknown seed kind %q", kind)
	}
	if err != nil {
		return err
	}
	*s = res
	return nil
}
