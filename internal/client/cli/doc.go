// Package cli is the ragrelay command-line client.
//
// Commands:
//
//	register   create a RAGFlow account through the relay
//	login      check credentials through the relay
//	apikey     obtain a RAGFlow API token through the relay
//	probe      check RAGFlow endpoints and, optionally, the relay port
//	version    print build information
//
// Passwords are read from the terminal without echo unless --password is
// given. Every relay reply is printed verbatim; only RPC faults make a
// command fail.
package cli
