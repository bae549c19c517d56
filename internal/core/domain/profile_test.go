package domain

import "testing"

func TestValidProfileType(t *testing.T) {
	for _, typ := range ProfileTypes {
		if !ValidProfileType(typ) {
			t.Fatalf("%q must be a registrable type", typ)
		}
	}

	// Admin is an identity class, not a profile type.
	for _, typ := range []string{RoleAdmin, "", "alien"} {
		if ValidProfileType(typ) {
			t.Fatalf("%q must not be registrable", typ)
		}
	}
}
