package legacyfcm

// MaxRecipients is the FCM limit of registration ids per bulk message.
const MaxRecipients = 1000

// ChunkRegistrationIDs splits the ids into successive chunks of at most
// MaxRecipients. The chunks share the backing array of ids.
func ChunkRegistrationIDs(ids []string) [][]string {

	if len(ids) == 0 {
		return nil
	}

	retval := make([][]string, 0, (len(ids)+MaxRecipients-1)/MaxRecipients)
	for len(ids) > MaxRecipients {
		retval = append(retval, ids[:MaxRecipients])
		ids = ids[MaxRecipients:]
	}

	return append(retval, ids)
}
