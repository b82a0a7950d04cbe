package models

import "fmt"

// ProfileURL builds the external profile link for a forum user id.
func ProfileURL(forumBase string, userID int64) string {
	return fmt.Sprintf("%s/index.php?action=profile;u=%d", forumBase, userID)
}

// ThreadURL builds the external link for a forum topic.
func ThreadURL(forumBase string, threadID int64) string {
	return fmt.Sprintf("%s/index.php?topic=%d", forumBase, threadID)
}
