// Package auth registers the single local account and manages the login
// session.
//
// Credentials are compared by plain string equality against the record saved
// at signup; emails are trimmed and lower-cased on both sides. A successful
// login stores a random session token, which is what "logged in" means for the
// rest of the app.
package auth
