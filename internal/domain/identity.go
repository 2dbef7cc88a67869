package domain

import "fmt"

type identityKind int

const (
	identityFirebase identityKind = iota + 1
	identityGtag
)

// Identity names the property and the client a payload belongs to. It is
// either a Firebase app id with an app instance id, or a gtag measurement id
// with a client id.
type Identity struct {
	kind       identityKind
	propertyID string
	instanceID string
}

// FirebaseIdentity identifies an app stream.
func FirebaseIdentity(firebaseAppID, appInstanceID string) Identity {
	return Identity{kind: identityFirebase, propertyID: firebaseAppID, instanceID: appInstanceID}
}

// GtagIdentity identifies a web stream.
func GtagIdentity(measurementID, clientID string) Identity {
	return Identity{kind: identityGtag, propertyID: measurementID, instanceID: clientID}
}

// IsFirebase reports whether the identity is an app stream identity.
func (i Identity) IsFirebase() bool { return i.kind == identityFirebase }

// Validate checks that both halves of the identity are present.
func (i Identity) Validate() error {
	switch i.kind {
	case identityFirebase:
		if i.propertyID == "" || i.instanceID == "" {
			return fmt.Errorf("%w: firebase app id and app instance id are required", ErrInvalidIdentity)
		}
	case identityGtag:
		if i.propertyID == "" || i.instanceID == "" {
			return fmt.Errorf("%w: measurement id and client id are required", ErrInvalidIdentity)
		}
	default:
		return fmt.Errorf("%w: no identity configured", ErrInvalidIdentity)
	}
	return nil
}

// QueryParam returns the query parameter naming the stream.
func (i Identity) QueryParam() (key, value string) {
	if i.kind == identityGtag {
		return "measurement_id", i.propertyID
	}
	return "firebase_app_id", i.propertyID
}

// BodyField returns the payload field naming the client.
func (i Identity) BodyField() (key, value string) {
	if i.kind == identityGtag {
		return "client_id", i.instanceID
	}
	return "app_instance_id", i.instanceID
}
