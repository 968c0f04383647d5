// Package legacy models the legacy (Anchor 0.29 and prior) IDL document,
// identified by its root-level "name".
//
// Only the program name and the names of account definitions are
// interpreted. Every other member, at the root and inside each account, is
// kept unchanged and in input order.
package legacy

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/idlts/idl"
	"github.com/signadot/idlts/internal/jsonobj"
)

var ErrMalformedInput = idl.ErrMalformedInput

type IDL struct {
	Name     string
	Accounts []Account

	members jsonobj.Object
}

type Account struct {
	Name string

	members jsonobj.Object
}

// Parse decodes a legacy IDL document. Any failure wraps ErrMalformedInput.
func Parse(d []byte) (*IDL, error) {
	doc := &IDL{}
	if err := json.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return doc, nil
}

// Get returns the raw value of a root member other than name and accounts.
func (doc *IDL) Get(key string) (json.RawMessage, bool) {
	return doc.members.Get(key)
}

func (doc *IDL) UnmarshalJSON(d []byte) error {
	if jsonobj.IsNull(d) {
		return fmt.Errorf("idl: expected object, got null")
	}
	obj, err := jsonobj.Parse(d)
	if err != nil {
		return fmt.Errorf("idl: %w", err)
	}
	if !obj.Has("name") {
		return fmt.Errorf("idl: missing field %q", "name")
	}
	res := IDL{members: obj}
	raw, _ := obj.Get("name")
	if err := json.Unmarshal(raw, &res.Name); err != nil {
		return fmt.Errorf("idl name: %w", err)
	}
	if obj.Has("accounts") {
		raw, _ := obj.Get("accounts")
		if err := json.Unmarshal(raw, &res.Accounts); err != nil {
			return fmt.Errorf("idl accounts: %w", err)
		}
	}
	*doc = res
	return nil
}

func (doc IDL) MarshalJSON() ([]byte, error) {
	obj := append(jsonobj.Object(nil), doc.members...)
	name, err := jsonobj.Marshal(doc.Name)
	if err != nil {
		return nil, err
	}
	obj.Set("name", name)
	if doc.Accounts != nil || obj.Has("accounts") {
		accounts := doc.Accounts
		if accounts == nil {
			accounts = []Account{}
		}
		d, err := jsonobj.Marshal(accounts)
		if err != nil {
			return nil, err
		}
		obj.Set("accounts", d)
	}
	return jsonobj.Marshal(obj)
}

func (a *Account) UnmarshalJSON(d []byte) error {
	if jsonobj.IsNull(d) {
		return fmt.Errorf("account: expected object, got null")
	}
	obj, err := jsonobj.Parse(d)
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}
	if !obj.Has("name") {
		return fmt.Errorf("account: missing field %q", "name")
	}
	res := Account{members: obj}
	raw, _ := obj.Get("name")
	if err := json.Unmarshal(raw, &res.Name); err != nil {
		return fmt.Errorf("account name: %w", err)
	}
	*a = res
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	obj := append(jsonobj.Object(nil), a.members...)
	name, err := jsonobj.Marshal(a.Name)
	if err != nil {
		return nil, err
	}
	obj.Set("name", name)
	return jsonobj.Marshal(obj)
}
