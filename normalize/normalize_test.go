package normalize

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/idlts/idl"
	"github.com/signadot/idlts/legacy"
)

func TestRecursive(t *testing.T) {
	doc := &idl.IDL{
		Metadata: idl.Metadata{Name: "my_program", Version: "0.1.0", Spec: "0.1.0"},
		Instructions: []idl.Instruction{{
			Name: "do_thing",
			Accounts: []idl.InstructionAccountItem{
				idl.SingleItem(idl.InstructionAccount{Name: "Payer_Key", Relations: []string{"some_owner"}}),
			},
			Args: []idl.Field{
				{Name: "the_amount", Type: idl.OptionOf(idl.DefinedOf("Amount_Kind"))},
			},
			Returns: &idl.Type{Kind: idl.DefinedType, Name: "Return_Type"},
		}},
		Accounts:  []idl.Account{{Name: "My_Account"}},
		Events:    []idl.Event{{Name: "Match_Started"}},
		Errors:    []idl.ErrorCode{{Code: 6000, Name: "Too_Big"}},
		Constants: []idl.Const{{Name: "MAX_SIZE", Type: idl.DefinedOf("Size_Type"), Value: "10"}},
		Types: []idl.TypeDef{
			{
				Name: "Wrapper_Type",
				Generics: []idl.TypeDefGeneric{
					{Kind: idl.TypeParam, Name: "T_Param"},
					{Kind: idl.ConstParam, Name: "N_LEN", Type: "usize"},
				},
				Type: idl.TypeDefTy{Kind: idl.StructDef, Fields: &idl.DefinedFields{
					Kind: idl.NamedFields,
					Named: []idl.Field{
						{Name: "inner_value", Type: idl.GenericOf("T_Param")},
						{Name: "fixed_items", Type: idl.ArrayOfGeneric(idl.DefinedOf("Item_Kind"), "N_LEN")},
						{Name: "nested", Type: idl.DefinedOf("Other_Type",
							idl.TypeArg(idl.VecOf(idl.DefinedOf("Deep_Type"))),
							idl.ConstArg("SOME_CONST"),
						)},
					},
				}},
			},
			{
				Name: "Game_Phase",
				Type: idl.TypeDefTy{Kind: idl.EnumDef, Variants: []idl.EnumVariant{
					{Name: "Not_Started"},
					{Name: "In_Progress", Fields: &idl.DefinedFields{
						Kind:  idl.TupleFields,
						Tuple: []idl.Type{idl.DefinedOf("Round_Info"), idl.Prim(idl.U8)},
					}},
				}},
			},
			{
				Name: "Alias_Type",
				Type: idl.TypeDefTy{Kind: idl.AliasDef, Alias: &idl.Type{Kind: idl.DefinedType, Name: "Aliased_Thing"}},
			},
		},
	}
	IDL(doc)

	want := &idl.IDL{
		Metadata: idl.Metadata{Name: "my_program", Version: "0.1.0", Spec: "0.1.0"},
		Instructions: []idl.Instruction{{
			Name: "doThing",
			Accounts: []idl.InstructionAccountItem{
				idl.SingleItem(idl.InstructionAccount{Name: "payerKey", Relations: []string{"some_owner"}}),
			},
			Args: []idl.Field{
				{Name: "theAmount", Type: idl.OptionOf(idl.DefinedOf("amountKind"))},
			},
			Returns: &idl.Type{Kind: idl.DefinedType, Name: "Return_Type"},
		}},
		Accounts:  []idl.Account{{Name: "myAccount"}},
		Events:    []idl.Event{{Name: "matchStarted"}},
		Errors:    []idl.ErrorCode{{Code: 6000, Name: "tooBig"}},
		Constants: []idl.Const{{Name: "maxSize", Type: idl.DefinedOf("Size_Type"), Value: "10"}},
		Types: []idl.TypeDef{
			{
				Name: "wrapperType",
				Generics: []idl.TypeDefGeneric{
					{Kind: idl.TypeParam, Name: "tParam"},
					{Kind: idl.ConstParam, Name: "nLen", Type: "usize"},
				},
				Type: idl.TypeDefTy{Kind: idl.StructDef, Fields: &idl.DefinedFields{
					Kind: idl.NamedFields,
					Named: []idl.Field{
						{Name: "innerValue", Type: idl.GenericOf("tParam")},
						{Name: "fixedItems", Type: idl.ArrayOfGeneric(idl.DefinedOf("itemKind"), "N_LEN")},
						{Name: "nested", Type: idl.DefinedOf("otherType",
							idl.TypeArg(idl.VecOf(idl.DefinedOf("deepType"))),
							idl.ConstArg("SOME_CONST"),
						)},
					},
				}},
			},
			{
				Name: "gamePhase",
				Type: idl.TypeDefTy{Kind: idl.EnumDef, Variants: []idl.EnumVariant{
					{Name: "notStarted"},
					{Name: "inProgress", Fields: &idl.DefinedFields{
						Kind:  idl.TupleFields,
						Tuple: []idl.Type{idl.DefinedOf("roundInfo"), idl.Prim(idl.U8)},
					}},
				}},
			},
			{
				Name: "aliasType",
				Type: idl.TypeDefTy{Kind: idl.AliasDef, Alias: &idl.Type{Kind: idl.DefinedType, Name: "aliasedThing"}},
			},
		},
	}
	if diff := cmp.Diff(want, doc, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("normalized (-want +got):\n%s", diff)
	}
}

func TestCompositeNesting(t *testing.T) {
	in := &idl.Instruction{
		Name: "settle",
		Accounts: []idl.InstructionAccountItem{
			idl.CompositeItem("Outer_Group",
				idl.SingleItem(idl.InstructionAccount{Name: "first_one"}),
				idl.CompositeItem("Inner_Group",
					idl.SingleItem(idl.InstructionAccount{Name: "Deep_Account"}),
				),
				idl.SingleItem(idl.InstructionAccount{Name: "last_one"}),
			),
		},
	}
	lowerCamel.Instruction(in)
	var got []string
	var walk func([]idl.InstructionAccountItem)
	walk = func(items []idl.InstructionAccountItem) {
		for i := range items {
			got = append(got, *items[i].Name())
			if items[i].Kind == idl.CompositeAccounts {
				walk(items[i].Composite.Accounts)
			}
		}
	}
	walk(in.Accounts)
	want := []string{"outerGroup", "firstOne", "innerGroup", "deepAccount", "lastOne"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestStructurePreserved(t *testing.T) {
	d, err := os.ReadFile("../idl/testdata/arena.json")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := idl.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	before, err := idl.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	IDL(doc)

	// renaming every name back to a fixed token yields equal documents
	// iff normalization touched nothing but names.
	blank := &Normalizer{Rename: func(string) string { return "x" }}
	blank.IDL(doc)
	blank.IDL(before)
	if diff := cmp.Diff(before, doc, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("structure changed (-want +got):\n%s", diff)
	}
	if doc.Metadata.Name != "game_arena" {
		t.Errorf("metadata name changed: %q", doc.Metadata.Name)
	}
}

func TestIdempotent(t *testing.T) {
	d, err := os.ReadFile("../idl/testdata/arena.json")
	if err != nil {
		t.Fatal(err)
	}
	once, err := idl.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	IDL(once)
	twice, err := idl.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	IDL(twice)
	IDL(twice)
	if diff := cmp.Diff(once, twice, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-once +twice):\n%s", diff)
	}
}

func TestLegacy(t *testing.T) {
	doc, err := legacy.Parse([]byte(`{
		"name": "old_program",
		"accounts": [{"name": "Vault_State"}, {"name": "UserProfile"}],
		"instructions": [{"name": "init_vault"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	Legacy(doc)
	var got []string
	for _, a := range doc.Accounts {
		got = append(got, a.Name)
	}
	if diff := cmp.Diff([]string{"vaultState", "userProfile"}, got); diff != "" {
		t.Errorf("accounts (-want +got):\n%s", diff)
	}
	if doc.Name != "old_program" {
		t.Errorf("program name changed: %q", doc.Name)
	}
	raw, _ := doc.Get("instructions")
	if !strings.Contains(string(raw), "init_vault") {
		t.Errorf("instructions changed: %s", raw)
	}
}
