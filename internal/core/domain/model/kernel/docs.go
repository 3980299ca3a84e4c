// Package kernel provides the value objects shared by the snackshop domain model.
//
// The package includes:
//   - Phone: a normalized Korean phone number used as the customer identity key
//   - Address: postal code plus two address lines
//   - PasswordHash: a bcrypt hash of an account or order password
//
// Value objects are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel
