package chit

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const defaultMemberName = "Member"

var ErrUnrecognizedMemberRef = errors.New("unrecognized member reference")

// Member is the canonical form every member reference resolves to.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MemberRef is one of BareID, EmbeddedUser or ApprovalWrapper.
type MemberRef interface {
	Resolve() Member
	Approved() bool
	isMemberRef()
}

// BareID is a reference carrying only the user id.
type BareID string

func (b BareID) Resolve() Member {
	return Member{ID: string(b), Name: defaultMemberName}
}

func (BareID) Approved() bool { return true }
func (BareID) isMemberRef()   {}

// EmbeddedUser is a reference carrying the user document itself.
type EmbeddedUser struct {
	ID    string
	Name  string
	Email string
}

func (u EmbeddedUser) Resolve() Member {
	m := Member{ID: u.ID, Name: u.Name, Email: u.Email}
	if m.Name == "" {
		m.Name = defaultMemberName
	}
	return m
}

func (EmbeddedUser) Approved() bool { return true }
func (EmbeddedUser) isMemberRef()   {}

// ApprovalWrapper wraps a BareID or EmbeddedUser with the approval flag of the membership.
type ApprovalWrapper struct {
	User       MemberRef
	IsApproved bool
}

func (w ApprovalWrapper) Resolve() Member {
	if w.User == nil {
		return Member{Name: defaultMemberName}
	}
	return w.User.Resolve()
}

func (w ApprovalWrapper) Approved() bool { return w.IsApproved }
func (ApprovalWrapper) isMemberRef()     {}

type userDoc struct {
	MongoID *string `json:"_id"`
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
}

func (d userDoc) empty() bool {
	return d.MongoID == nil && d.ID == nil && d.Name == nil && d.Email == nil
}

func (d userDoc) toEmbedded() EmbeddedUser {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return strings.TrimSpace(*s)
	}
	id := deref(d.MongoID)
	if id == "" {
		id = deref(d.ID)
	}
	return EmbeddedUser{ID: id, Name: deref(d.Name), Email: deref(d.Email)}
}

// DecodeMemberRef decodes one entry of a legacy joinedUsers array.
func DecodeMemberRef(raw json.RawMessage) (MemberRef, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrUnrecognizedMemberRef
	}

	switch raw[0] {
	case '"':
		return decodeBareID(raw)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, errors.Join(ErrUnrecognizedMemberRef, err)
		}
		if user, ok := fields["user"]; ok {
			return decodeWrapper(user, fields["isApproved"])
		}
		return decodeEmbedded(raw)
	default:
		return nil, ErrUnrecognizedMemberRef
	}
}

func decodeBareID(raw json.RawMessage) (MemberRef, error) {
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, errors.Join(ErrUnrecognizedMemberRef, err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrUnrecognizedMemberRef
	}
	return BareID(id), nil
}

func decodeEmbedded(raw json.RawMessage) (MemberRef, error) {
	var doc userDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrUnrecognizedMemberRef, err)
	}
	if doc.empty() {
		return nil, ErrUnrecognizedMemberRef
	}
	return doc.toEmbedded(), nil
}

// A wrapper without an isApproved field is treated as approved: the legacy backend only
// listed approved memberships in joinedUsers.
func decodeWrapper(user, approved json.RawMessage) (MemberRef, error) {
	user = bytes.TrimSpace(user)
	if len(user) == 0 {
		return nil, ErrUnrecognizedMemberRef
	}

	var inner MemberRef
	var err error
	switch user[0] {
	case '"':
		inner, err = decodeBareID(user)
	case '{':
		inner, err = decodeEmbedded(user)
	default:
		err = ErrUnrecognizedMemberRef
	}
	if err != nil {
		return nil, err
	}

	w := ApprovalWrapper{User: inner, IsApproved: true}
	if len(approved) > 0 && string(approved) != "null" {
		if err := json.Unmarshal(approved, &w.IsApproved); err != nil {
			return nil, errors.Join(ErrUnrecognizedMemberRef, err)
		}
	}
	return w, nil
}

// ResolveMembers decodes a legacy joinedUsers array. Entries that cannot be decoded are
// reported by index and left out of the result.
func ResolveMembers(raw []json.RawMessage) (refs []MemberRef, rejected []int) {
	for i, r := range raw {
		ref, err := DecodeMemberRef(r)
		if err != nil {
			rejected = append(rejected, i)
			continue
		}
		refs = append(refs, ref)
	}
	return refs, rejected
}
