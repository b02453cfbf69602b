package preview

import (
	"strconv"
	"strings"
)

// Page wraps tooltip markup in a standalone HTML document. Live pages
// include the script that applies frames from /ws.
func Page(fragment string, revision uint64, live bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Tooltip preview</title>\n")
	b.WriteString(pageStyle)
	b.WriteString("</head>\n<body>\n<div id=\"tooltip-root\" data-revision=\"")
	b.WriteString(formatRevision(revision))
	b.WriteString("\">")
	b.WriteString(fragment)
	b.WriteString("</div>\n")
	if live {
		b.WriteString(liveScript)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func formatRevision(rev uint64) string {
	return strconv.FormatUint(rev, 10)
}

const pageStyle = `<style>
body { font: 12px sans-serif; background: #f5f5f5; padding: 24px; }
#tooltip-root { display: inline-block; background: #fff; border: 1px solid #ccc; border-radius: 4px; padding: 6px 8px; box-shadow: 0 1px 4px rgba(0,0,0,.15); }
</style>
`

const liveScript = `<script>
(function() {
    'use strict';

    var root = document.getElementById('tooltip-root');
    var revision = parseInt(root.getAttribute('data-revision'), 10) || 0;
    var delay = 1000;

    function node(hid) {
        return root.querySelector('[data-hid="' + hid + '"]');
    }

    function fromHTML(html) {
        var t = document.createElement('template');
        t.innerHTML = html || '';
        return t.content;
    }

    function apply(p) {
        var el = p.hid ? node(p.hid) : null;
        switch (p.op) {
        case 'SetText': if (el) el.textContent = p.value; break;
        case 'SetHTML': if (el) el.innerHTML = p.html || p.value || ''; break;
        case 'SetAttr': if (el) el.setAttribute(p.key, p.value); break;
        case 'RemoveAttr': if (el) el.removeAttribute(p.key); break;
        case 'RemoveNode': if (el) el.remove(); break;
        case 'ReplaceNode': if (el) el.replaceWith(fromHTML(p.html)); break;
        case 'InsertNode':
        case 'MoveNode':
            var parent = node(p.parent);
            if (!parent) return false;
            var child = p.op === 'InsertNode' ? fromHTML(p.html) : el;
            if (!child) return false;
            parent.insertBefore(child, parent.children[p.index || 0] || null);
            break;
        default: return false;
        }
        return true;
    }

    function onFrame(f) {
        if (f.revision <= revision && !f.full) return;
        if (f.full) {
            root.innerHTML = f.html || '';
        } else {
            for (var i = 0; i < (f.patches || []).length; i++) {
                if (!apply(f.patches[i])) { location.reload(); return; }
            }
        }
        revision = f.revision;
        root.setAttribute('data-revision', revision);
    }

    function connect() {
        var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(proto + '//' + location.host + '/ws?since=' + revision);
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) { onFrame(JSON.parse(e.data)); };
        ws.onclose = function() {
            setTimeout(connect, delay);
            delay = Math.min(delay * 2, 30000);
        };
    }

    connect();
})();
</script>
`
